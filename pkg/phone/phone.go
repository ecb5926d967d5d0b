package phone

import "strings"

// CountryPrefix международный префикс Кении
const CountryPrefix = "+254"

// Format нормализует номер телефона к виду +254XXXXXXXXX
//
// Оставляет только цифры и ведущий "+". Ведущий 0 заменяется на +254,
// при отсутствии "+" префикс +254 добавляется. Пустой ввод остаётся пустым.
func Format(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return ""
	}

	if strings.HasPrefix(cleaned, "0") {
		return CountryPrefix + cleaned[1:]
	}

	if !strings.HasPrefix(cleaned, "+") {
		return CountryPrefix + cleaned
	}

	return cleaned
}

// ToMSISDN переводит номер в формат платёжного провайдера (2547XXXXXXXX, без "+")
func ToMSISDN(number string) string {
	number = strings.TrimPrefix(number, "+")
	if strings.HasPrefix(number, "0") {
		return "254" + number[1:]
	}
	return number
}
