package common

import "time"

// Schema contract for the NAV table. The repository only relies on the code
// and date columns; value columns are passed through as-is.
const (
	NAVTable       = "fund_nav"
	FundCodeColumn = "fund_code"
	NAVDateColumn  = "nav_date"
)

type FundNAV struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FundCode       string    `gorm:"column:fund_code;index" json:"fund_code"`
	NAVDate        time.Time `gorm:"column:nav_date;index" json:"nav_date"`
	UnitNAV        float64   `gorm:"column:unit_nav" json:"unit_nav"`
	AccumulatedNAV float64   `gorm:"column:accumulated_nav" json:"accumulated_nav"`
}

func (FundNAV) TableName() string {
	return NAVTable
}
