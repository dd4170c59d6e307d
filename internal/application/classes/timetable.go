package classes

import (
	"sort"
	"time"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

const (
	firstHour = 7
	lastHour  = 21
)

var dayNames = []string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

var scheduleLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseSchedule(s string) (time.Time, bool) {
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BuildTimetable coloca cada grupo en la celda día/hora de su Schedule.
// Horarios ilegibles o fuera de 07:00-21:00 no aparecen.
func BuildTimetable(groups []entity.TrainingGroup) *dto.TimetableResponse {
	type key struct{ day, hour int }
	cells := map[key][]dto.TimetableEntry{}
	for _, g := range groups {
		t, ok := parseSchedule(g.Schedule)
		if !ok || t.Hour() < firstHour || t.Hour() > lastHour {
			continue
		}
		k := key{day: int(t.Weekday()), hour: t.Hour()}
		cells[k] = append(cells[k], dto.TimetableEntry{GroupID: g.ID, Name: g.Name, Level: g.Level})
	}

	out := &dto.TimetableResponse{
		Days:  dayNames,
		Hours: make([]int, 0, lastHour-firstHour+1),
		Slots: make([]dto.TimetableSlot, 0, len(cells)),
	}
	for h := firstHour; h <= lastHour; h++ {
		out.Hours = append(out.Hours, h)
	}
	for k, entries := range cells {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
		out.Slots = append(out.Slots, dto.TimetableSlot{Day: k.day, Hour: k.hour, Groups: entries})
	}
	sort.Slice(out.Slots, func(i, j int) bool {
		if out.Slots[i].Day != out.Slots[j].Day {
			return out.Slots[i].Day < out.Slots[j].Day
		}
		return out.Slots[i].Hour < out.Slots[j].Hour
	})
	return out
}
