package domain

import "time"

// Profile es la identidad publica del dueño del portafolio.
type Profile struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Title       string      `json:"title"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	Location    string      `json:"location,omitempty"`
	Birthday    string      `json:"birthday,omitempty"`
	Bio         string      `json:"bio"`
	Avatar      string      `json:"avatar,omitempty"`
	Image       string      `json:"image,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	ResumeLink  string      `json:"resumeLink,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// SocialLinks mapea plataforma -> URL; cada entrada es opcional.
type SocialLinks map[string]string

// Plataformas conocidas, en el orden en que se muestran.
var SocialPlatforms = []string{
	"github",
	"linkedin",
	"x",
	"facebook",
	"instagram",
	"youtube",
	"telegram",
	"whatsapp",
}
