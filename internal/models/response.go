package models

type ErrorBody struct {
	Error string `json:"error"`
}

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

func ErrorResponse(err string) ErrorBody {
	return ErrorBody{Error: err}
}
