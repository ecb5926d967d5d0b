package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/internal/pricing"
)

// monotonicHorizon сколько ночей проверяется на монотонность цены
const monotonicHorizon = 45

// Catalog неизменяемый каталог номеров, загружается один раз при старте
type Catalog struct {
	suites []domain.Suite
	byID   map[string]int
}

// New валидирует номера и строит каталог
func New(suites []domain.Suite) (*Catalog, error) {
	c := &Catalog{
		suites: make([]domain.Suite, 0, len(suites)),
		byID:   make(map[string]int, len(suites)),
	}

	for _, s := range suites {
		if err := validateSuite(s); err != nil {
			return nil, err
		}
		if _, exists := c.byID[s.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSuite, s.ID)
		}

		c.byID[s.ID] = len(c.suites)
		c.suites = append(c.suites, cloneSuite(s))
	}

	return c, nil
}

// fileFormat формат TOML-файла каталога
type fileFormat struct {
	Suites []domain.Suite `toml:"suites"`
}

// LoadFile читает номера из TOML-файла
// Пустой путь к изображению заменяется значением из images
func LoadFile(path string, images Images) ([]domain.Suite, error) {
	var f fileFormat
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFile, path, err)
	}

	defaults := map[string]string{
		SuiteNomad:      images.Nomad,
		SuiteMinimalist: images.Minimalist,
		SuiteWellness:   images.Wellness,
		SuitePause:      images.Pause,
	}
	for i := range f.Suites {
		if f.Suites[i].Image == "" {
			f.Suites[i].Image = defaults[f.Suites[i].ID]
		}
	}

	return f.Suites, nil
}

// All возвращает все номера в порядке загрузки
func (c *Catalog) All() []domain.Suite {
	return c.filter(func(domain.Suite) bool { return true })
}

// Get возвращает номер по id
func (c *Catalog) Get(id string) (domain.Suite, error) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Suite{}, ErrSuiteNotFound
	}
	return cloneSuite(c.suites[idx]), nil
}

// Available возвращает номера, доступные для бронирования
func (c *Catalog) Available() []domain.Suite {
	return c.filter(func(s domain.Suite) bool { return s.Available })
}

// Hourly возвращает почасовые номера
func (c *Catalog) Hourly() []domain.Suite {
	return c.filter(func(s domain.Suite) bool { return s.IsHourly })
}

// Nightly возвращает посуточные номера
func (c *Catalog) Nightly() []domain.Suite {
	return c.filter(func(s domain.Suite) bool { return !s.IsHourly })
}

func (c *Catalog) filter(keep func(domain.Suite) bool) []domain.Suite {
	result := make([]domain.Suite, 0, len(c.suites))
	for _, s := range c.suites {
		if keep(s) {
			result = append(result, cloneSuite(s))
		}
	}
	return result
}

func validateSuite(s domain.Suite) error {
	if s.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidSuite)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: %s: name is required", ErrInvalidSuite, s.ID)
	}
	if s.WeeklyRate < 0 || s.MonthlyRate < 0 {
		return fmt.Errorf("%w: %s: rates must not be negative", ErrInvalidSuite, s.ID)
	}
	if !s.ColorTemp.IsValid() {
		return fmt.Errorf("%w: %s: unknown color temperature %q", ErrInvalidSuite, s.ID, s.ColorTemp)
	}

	if !s.IsHourly {
		if n := pricing.FirstNonMonotonicNight(s, monotonicHorizon); n != 0 {
			return fmt.Errorf("%w: %s: %d nights cost less than %d", ErrNonMonotonicRates, s.ID, n, n-1)
		}
	}

	return nil
}

func cloneSuite(s domain.Suite) domain.Suite {
	s.Highlights = append([]string(nil), s.Highlights...)
	return s
}
