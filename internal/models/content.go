package models

// ContentType distinguishes homepage slide media
type ContentType string

const (
	ContentTypeImage ContentType = "image"
	ContentTypeVideo ContentType = "video"
)

// HomePageContent represents a single slide on the landing page slideshow.
// Voiceover holds base64-encoded audio generated by the speech service.
type HomePageContent struct {
	ID        string      `json:"id"`
	Type      ContentType `json:"type"`
	URL       string      `json:"url"`
	Voiceover string      `json:"voiceover,omitempty"`
}
