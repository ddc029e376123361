package entity

type ImageRequest struct {
	Word string `json:"word"`
}

type ImageResult struct {
	ImageData string `json:"image_data"`
	Word      string `json:"word"`
}
