package transport

type LoginRequest struct {
	Password string `json:"password"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type SessionResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type TranslateResponse struct {
	Translations []string `json:"translations"`
}

type UploadResponse struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
}

type SearchResponse[T any] struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	Size     int   `json:"size"`
	Products []T   `json:"products"`
}
