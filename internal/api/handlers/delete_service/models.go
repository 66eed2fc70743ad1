package delete_service

// DeleteServiceResponse HTTP response model
type DeleteServiceResponse struct {
	Message string `json:"message"`
}
