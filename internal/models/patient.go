package models

// Patient represents one row of the PATIENTS intake table.
// The gorm tags are the single attribute-to-column mapping; both the
// storage layer and the handler DTOs are derived from this struct.
type Patient struct {
	Eid               uint   `gorm:"column:eid;primaryKey" json:"eid"`
	Fname             string `gorm:"column:fname;size:32" json:"fname"`
	Lname             string `gorm:"column:lname;size:32" json:"lname"`
	Identity          string `gorm:"column:identity;size:13" json:"identity"`
	Cellnum           string `gorm:"column:cellnum;size:10" json:"cellnum"`
	Email             string `gorm:"column:email;size:32" json:"email"`
	Gender            string `gorm:"column:gender;size:32" json:"gender"`
	Homeaddress       string `gorm:"column:homeaddress;size:1000" json:"homeaddress"`
	Painscale         int    `gorm:"column:painscale" json:"painscale"`
	Painnature        string `gorm:"column:painnature;size:32" json:"painnature"`
	Immediate         bool   `gorm:"column:immediate" json:"immediate"`
	Trauma            string `gorm:"column:trauma;size:50" json:"trauma"`
	Surgeries         string `gorm:"column:surgeries;size:50" json:"surgeries"`
	Fever             bool   `gorm:"column:fever" json:"fever"`
	Weightchange      bool   `gorm:"column:weightchange" json:"weightchange"`
	Breathing         bool   `gorm:"column:breathing" json:"breathing"`
	Coughing          bool   `gorm:"column:coughing" json:"coughing"`
	Descough          string `gorm:"column:descough;size:32" json:"descough"`
	Chestpain         bool   `gorm:"column:chestpain" json:"chestpain"`
	Nausea            bool   `gorm:"column:nausea" json:"nausea"`
	Vomiting          bool   `gorm:"column:vomiting" json:"vomiting"`
	Diarrhea          bool   `gorm:"column:diarrhea" json:"diarrhea"`
	Urinationissues   bool   `gorm:"column:urinationissues" json:"urinationissues"`
	Changesvision     bool   `gorm:"column:changesvision" json:"changesvision"`
	Skinabnormalities bool   `gorm:"column:skinabnormalities" json:"skinabnormalities"`
	Functionalhistory string `gorm:"column:functionalhistory;size:500" json:"functionalhistory"`
	Allergies         string `gorm:"column:allergies;size:50" json:"allergies"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "PATIENTS"
}
