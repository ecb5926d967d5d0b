package config

// Default значения по умолчанию, совпадающие с публичным сайтом
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			AllowedOrigins:  []string{"http://localhost:3000"},
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "dayseven-booking",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Session: SessionConfig{
			Lifetime:   120,
			CookieName: "dayseven_session",
		},
		Uploads: UploadsConfig{
			Dir:         "uploads",
			MaxFileSize: 5 << 20,
		},
		App: AppConfig{
			Name:        "Day Seven",
			URL:         "http://localhost:3000",
			Description: "Quiet. Modern. Yours.",
		},
		Contact: ContactConfig{
			Email: "hello@dayseven.com",
			Phone: "+254 700 000 000",
		},
		Social: SocialConfig{
			Instagram: "https://instagram.com/daysevennairobi",
			Twitter:   "https://twitter.com/daysevennairobi",
			LinkedIn:  "https://linkedin.com/company/daysevennairobi",
			TikTok:    "https://tiktok.com/@daysevennairobi",
		},
		SEO: SEOConfig{
			SiteURL:       "https://nairobiexecutivestays.com",
			TwitterHandle: "@nairobiexecutive",
		},
		Business: BusinessConfig{
			Name:      "Nairobi Executive Stays",
			Email:     "hello@nairobiexecutivestays.com",
			Phone:     "+254700000000",
			Location:  "Kilimani, Nairobi",
			Latitude:  -1.2921,
			Longitude: 36.8219,
		},
		Images: ImagesConfig{
			NomadSuite:      "/modern-minimalist-workspace-with-large-monitor-and.png",
			MinimalistSuite: "/minimalist-bedroom-with-neutral-colors-and-natural.png",
			WellnessSuite:   "/wellness-room-with-plants-yoga-mat-and-natural-lig.png",
			PauseSuite:      "/reset-ritual-wooden-tray-with-tea-and-snacks.png",
		},
		Mpesa: MpesaConfig{
			Env:         "sandbox",
			CallbackURL: "https://example.com/callback",
			Timeout:     10,
		},
		Resend: ResendConfig{
			FromEmail: "onboarding@resend.dev",
			BaseURL:   "https://api.resend.com",
			Timeout:   10,
		},
		SMTP: SMTPConfig{
			Port: 587,
		},
	}
}
