package models

// SamplePatients returns the built-in records inserted after a table
// recreate. Returned fresh on every call so callers can hand the slice
// to gorm without sharing state.
func SamplePatients() []Patient {
	return []Patient{
		{
			Fname:             "Patrick",
			Lname:             "Dlamini",
			Identity:          "0105232541085",
			Cellnum:           "0609805147",
			Email:             "johndoe@gmail.com",
			Gender:            "Male",
			Homeaddress:       "90 pain rd, durban",
			Painscale:         9,
			Painnature:        "Pain in the abdomen",
			Immediate:         true,
			Trauma:            "none",
			Surgeries:         "none",
			Descough:          "none",
			Functionalhistory: "smoker,drugs",
			Allergies:         "penicilin",
		},
		{
			Fname:             "Patience",
			Lname:             "Dlamini",
			Identity:          "0105237771085",
			Cellnum:           "0506587417",
			Email:             "janedoe@gmail.com",
			Gender:            "Female",
			Homeaddress:       "10 injury rd, durban",
			Painscale:         2,
			Painnature:        "Cough",
			Immediate:         false,
			Trauma:            "none",
			Surgeries:         "none",
			Descough:          "none",
			Functionalhistory: "smoker",
			Allergies:         "penicilin",
		},
	}
}
