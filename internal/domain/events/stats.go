package events

import "time"

const dateLayout = "2006-01-02"

// Stats son los contadores del dashboard para los eventos propios.
type Stats struct {
	Upcoming int
	ThisWeek int
	Past     int
}

// ComputeStats cuenta sobre mine relativo a now (hora local de pared).
// Hoy cuenta como upcoming. La semana termina el próximo domingo;
// si hoy es domingo, termina hoy.
func ComputeStats(mine []Event, now time.Time) Stats {
	today := now.Format(dateLayout)
	endOfWeek := EndOfWeek(now).Format(dateLayout)

	var s Stats
	for _, e := range mine {
		if e.Date < today {
			s.Past++
			continue
		}
		s.Upcoming++
		if e.Date <= endOfWeek {
			s.ThisWeek++
		}
	}
	return s
}

// EndOfWeek devuelve el domingo de la semana de now (aritmética de días, sin locale).
func EndOfWeek(now time.Time) time.Time {
	days := (7 - int(now.Weekday())) % 7
	return now.AddDate(0, 0, days)
}
