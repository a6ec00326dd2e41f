package domain

var (
	MessageSuccessGenerateQR = "QR code generated successfully"
	MessageSuccessUploadQR   = "QR code uploaded successfully"

	MessageFailedGenerateQR = "failed to generate QR code"
	MessageFailedUploadQR   = "failed to upload QR code"
)

type (
	// Payload matches the desktop generator: dates are dd-MM-yyyy strings.
	GenerateQRRequest struct {
		Name             string  `json:"name" validate:"required"`
		ProductType      string  `json:"product_type" validate:"required"`
		ManufactureDate  string  `json:"manufacture_date" validate:"required"`
		ExpiryDate       string  `json:"expiry_date" validate:"required"`
		Mass             float64 `json:"mass" validate:"required,gt=0"`
		Unit             string  `json:"unit" validate:"required,oneof=г кг мл л"`
		NutritionalValue string  `json:"nutritional_value"`
	}

	UploadQRResponse struct {
		ImageURL string `json:"image_url"`
	}
)
