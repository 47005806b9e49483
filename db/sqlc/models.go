package db

// Layout is the timestamp format stored in the registrar columns.
const Layout = "2006-01-02 15:04:05"

// User is one row of the registrar table. The token column holds the bcrypt
// hash of the full API key; only the prefix is stored in clear.
type User struct {
	EmailAddress string `json:"email_address"`
	Prefix       string `json:"prefix"`
	Token        string `json:"token"`
	GeneratedAt  string `json:"generated_at"`
	ExpiredAt    string `json:"expired_at"`
}

// Calibration is one stored calibration run. The float slices map to
// postgres double precision arrays.
type Calibration struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	B         float64   `json:"b"`
	Drifts    []float64 `json:"drifts"`
	Curve     []float64 `json:"curve"`
	Fitted    []float64 `json:"fitted"`
	Sse       float64   `json:"sse"`
	Converged bool      `json:"converged"`
}
