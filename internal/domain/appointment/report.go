package appointment

import (
	"encoding/xml"
	"fmt"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

// ===============================
// Report tree
// ===============================

type Report struct {
	XMLName xml.Name       `xml:"reporte"`
	Summary ReportSummary  `xml:"resumen"`
	Artists []ArtistReport `xml:"tatuador"`
}

type ReportSummary struct {
	Total int `xml:"total_general"`
}

type ArtistReport struct {
	ID    uint   `xml:"id,attr"`
	Name  string `xml:"nombre,attr"`
	Style string `xml:"estilo,attr"`

	Total      int    `xml:"total_citas"`
	Percentage string `xml:"porcentaje"`

	Appointments []AppointmentReport `xml:"cita"`
}

type AppointmentReport struct {
	ID          uint   `xml:"id,attr"`
	ClientID    uint   `xml:"cliente_id"`
	Date        string `xml:"fecha"`
	StartTime   string `xml:"hora_inicio"`
	EndTime     string `xml:"hora_fin"`
	Description string `xml:"descripcion"`
}

// ===============================
// Build
// ===============================

// BuildReport groups aps by artist, in order of each artist's first
// appearance, and computes totals and shares of the grand total.
func BuildReport(aps []models.Appointment) Report {
	total := len(aps)

	index := make(map[uint]int)
	var artists []ArtistReport

	for _, ap := range aps {
		pos, ok := index[ap.ArtistID]
		if !ok {
			pos = len(artists)
			index[ap.ArtistID] = pos
			artists = append(artists, ArtistReport{
				ID:    ap.ArtistID,
				Name:  ap.Artist.Name,
				Style: deref(ap.Artist.Style),
			})
		}

		artists[pos].Appointments = append(artists[pos].Appointments, AppointmentReport{
			ID:          ap.ID,
			ClientID:    ap.ClientID,
			Date:        FormatDate(ap.Date),
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Description: deref(ap.Description),
		})
	}

	for i := range artists {
		artists[i].Total = len(artists[i].Appointments)
		artists[i].Percentage = Percentage(artists[i].Total, total)
	}

	return Report{
		Summary: ReportSummary{Total: total},
		Artists: artists,
	}
}

// Percentage formats 100*part/total with two decimals. A zero total
// yields "0.00%".
func Percentage(part, total int) string {
	var pct float64
	if total > 0 {
		pct = float64(part) / float64(total) * 100
	}
	return fmt.Sprintf("%.2f%%", pct)
}

// Document serializes the report with an XML declaration.
func (r Report) Document() ([]byte, error) {
	body, err := xml.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
