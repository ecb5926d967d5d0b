package get_site_info

import "github.com/m04kA/DaySeven-BookingService/internal/config"

// SiteInfoResponse публичные сведения о сайте и бизнесе
type SiteInfoResponse struct {
	App      AppInfo      `json:"app"`
	Contact  ContactInfo  `json:"contact"`
	Social   SocialLinks  `json:"social"`
	SEO      SEOInfo      `json:"seo"`
	Business BusinessInfo `json:"business"`
}

type AppInfo struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SocialLinks struct {
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	TikTok    string `json:"tiktok"`
}

type SEOInfo struct {
	SiteURL            string `json:"siteUrl"`
	TwitterHandle      string `json:"twitterHandle"`
	GoogleVerification string `json:"googleVerification,omitempty"`
}

type BusinessInfo struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FromConfig собирает ответ из конфигурации
func FromConfig(cfg *config.Config) SiteInfoResponse {
	return SiteInfoResponse{
		App: AppInfo{
			Name:        cfg.App.Name,
			URL:         cfg.App.URL,
			Description: cfg.App.Description,
		},
		Contact: ContactInfo{
			Email: cfg.Contact.Email,
			Phone: cfg.Contact.Phone,
		},
		Social: SocialLinks{
			Instagram: cfg.Social.Instagram,
			Twitter:   cfg.Social.Twitter,
			LinkedIn:  cfg.Social.LinkedIn,
			TikTok:    cfg.Social.TikTok,
		},
		SEO: SEOInfo{
			SiteURL:            cfg.SEO.SiteURL,
			TwitterHandle:      cfg.SEO.TwitterHandle,
			GoogleVerification: cfg.SEO.GoogleVerification,
		},
		Business: BusinessInfo{
			Name:      cfg.Business.Name,
			Email:     cfg.Business.Email,
			Phone:     cfg.Business.Phone,
			Location:  cfg.Business.Location,
			Latitude:  cfg.Business.Latitude,
			Longitude: cfg.Business.Longitude,
		},
	}
}
