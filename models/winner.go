package models

import "encoding/json"

// Winner is one competitor's placement entry for a workshop. The JSON tags
// match the on-disk winners file, so records round-trip unchanged.
type Winner struct {
	ID              int    `json:"id"`
	WorkshopID      string `json:"workshopId"`
	WorkshopName    string `json:"workshopName"`
	Position        int    `json:"position"` // 1, 2 or 3
	Name            string `json:"name"`
	RegNo           string `json:"regNo"`
	CertificateCode string `json:"certificateCode"`
	CertificateFile string `json:"certificateFile"`
}

// PublicWinner is the projection served to non-admin callers. It never
// carries the certificate code or file name.
type PublicWinner struct {
	ID           int    `json:"id"`
	WorkshopID   string `json:"workshopId"`
	WorkshopName string `json:"workshopName"`
	Position     int    `json:"position"`
	Name         string `json:"name"`
	RegNo        string `json:"regNo"`
}

// Public strips the certificate fields from a winner record.
func (w Winner) Public() PublicWinner {
	return PublicWinner{
		ID:           w.ID,
		WorkshopID:   w.WorkshopID,
		WorkshopName: w.WorkshopName,
		Position:     w.Position,
		Name:         w.Name,
		RegNo:        w.RegNo,
	}
}

// WinnerInput is the admin payload for adding a winner. Position arrives as
// a number from API clients and as a string from the admin form; both are
// accepted and validated in the store.
type WinnerInput struct {
	WorkshopID      string        `json:"workshopId"`
	WorkshopName    string        `json:"workshopName"`
	Position        PositionValue `json:"position"`
	Name            string        `json:"name"`
	RegNo           string        `json:"regNo"`
	CertificateFile string        `json:"certificateFile"`
}

// PositionValue decodes from either a JSON string or a JSON number,
// keeping the raw text so the store can run the {1,2,3} check itself.
type PositionValue string

func (p *PositionValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = PositionValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PositionValue(n.String())
	return nil
}
