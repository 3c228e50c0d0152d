package entity

// Clinic holds the single clinic record. Timezone is the IANA zone all
// booking timestamps are interpreted in.
type Clinic struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Address  string `gorm:"type:varchar(255)" json:"address"`
	Timezone string `gorm:"type:varchar(64);not null" json:"timezone"`
}

func (Clinic) TableName() string {
	return "clinics"
}
