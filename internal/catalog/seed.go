package catalog

import "github.com/m04kA/DaySeven-BookingService/internal/domain"

// Suite ids
const (
	SuiteNomad      = "nomad"
	SuiteMinimalist = "minimalist"
	SuiteWellness   = "wellness"
	SuitePause      = "pause"
)

// Images пути к изображениям номеров (из секции [images] конфигурации)
type Images struct {
	Nomad      string
	Minimalist string
	Wellness   string
	Pause      string
}

// Default возвращает встроенный каталог номеров
//
// Месячные тарифы подобраны так, чтобы 30 ночей со скидкой 15% стоили
// не меньше 29 ночей со скидкой 10%.
func Default(images Images) []domain.Suite {
	return []domain.Suite{
		{
			ID:      SuiteNomad,
			Name:    "Nomad Suite",
			Tagline: "Workspace with monitor + fast WiFi for techies",
			Image:   images.Nomad,
			Highlights: []string{
				"Dedicated workspace",
				`27" 4K monitor`,
				"100Mbps fiber WiFi",
				"Ergonomic chair",
				"Backup power",
			},
			WeeklyRate:  28000,
			MonthlyRate: 125000,
			Available:   true,
			ColorTemp:   domain.ColorCool,
			LastBooked:  "3 hours ago",
		},
		{
			ID:      SuiteMinimalist,
			Name:    "Minimalist Escape",
			Tagline: "Neutral, uncluttered, calming space",
			Image:   images.Minimalist,
			Highlights: []string{
				"Neutral color palette",
				"Quality linens",
				"Uncluttered design",
				"Natural materials",
				"Quiet environment",
			},
			WeeklyRate:  25000,
			MonthlyRate: 110000,
			Available:   true,
			ColorTemp:   domain.ColorNeutral,
			LastBooked:  "1 hour ago",
		},
		{
			ID:      SuiteWellness,
			Name:    "Wellness Corner",
			Tagline: "Plants, yoga mat, light-filled space",
			Image:   images.Wellness,
			Highlights: []string{
				"Yoga mat included",
				"Air-purifying plants",
				"Natural light",
				"Meditation corner",
				"Essential oils",
			},
			WeeklyRate:  30000,
			MonthlyRate: 135000,
			Available:   true,
			ColorTemp:   domain.ColorWarm,
			LastBooked:  "30 minutes ago",
		},
		{
			ID:      SuitePause,
			Name:    "Pause",
			Tagline: "Stay for the hours you need",
			Image:   images.Pause,
			Highlights: []string{
				"Flexible hourly stays",
				"Perfect for layovers",
				"Between meetings",
				"Private rest space",
				"Meals available every 6 hours",
			},
			Available:  true,
			ColorTemp:  domain.ColorMuted,
			LastBooked: "45 minutes ago",
			IsHourly:   true,
		},
	}
}
