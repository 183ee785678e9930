package model

// Manager is a registered pharmacy manager. Rows are only ever inserted;
// the store assigns SRNo.
type Manager struct {
	ID           uint   `json:"id" gorm:"column:SRNo;primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"column:ManagerName;size:255"`
	PharmacyName string `json:"pharmacy_name" gorm:"column:PharmacyName;size:255"`
}

// TableName maps Manager onto the legacy table.
func (Manager) TableName() string {
	return "Manager"
}
