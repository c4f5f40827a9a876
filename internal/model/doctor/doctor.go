package doctor

// AllSpecialties is the filter value that matches every specialty.
const AllSpecialties = "All Specialties"

// Doctor is one entry of the directory shown to patients.
type Doctor struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Specialty     string   `json:"specialty"`
	Hospital      string   `json:"hospital"`
	Location      string   `json:"location"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Experience    int      `json:"experience"`
	Fee           int      `json:"fee"`
	Available     bool     `json:"available"`
	NextAvailable string   `json:"nextAvailable"`
	Languages     []string `json:"languages"`
	Image         string   `json:"image,omitempty"`
}

// Specialties lists the filter choices, starting with AllSpecialties.
func Specialties() []string {
	return []string{
		AllSpecialties,
		"General Physician",
		"Cardiologist",
		"Dermatologist",
		"Orthopedic",
		"Pediatrician",
		"Neurologist",
		"ENT Specialist",
		"Gastroenterologist",
	}
}

// Seed provides the static directory.
func Seed() []Doctor {
	return []Doctor{
		{
			ID:            "1",
			Name:          "Dr. Sarah Johnson",
			Specialty:     "General Physician",
			Hospital:      "City Medical Center",
			Location:      "Downtown",
			Rating:        4.9,
			Reviews:       324,
			Experience:    15,
			Fee:           50,
			Available:     true,
			NextAvailable: "Today, 2:00 PM",
			Languages:     []string{"English", "Spanish"},
		},
		{
			ID:            "2",
			Name:          "Dr. Michael Chen",
			Specialty:     "Cardiologist",
			Hospital:      "Heart Care Institute",
			Location:      "Medical District",
			Rating:        4.8,
			Reviews:       256,
			Experience:    20,
			Fee:           120,
			Available:     true,
			NextAvailable: "Today, 4:00 PM",
			Languages:     []string{"English", "Mandarin"},
		},
		{
			ID:            "3",
			Name:          "Dr. Emily Rodriguez",
			Specialty:     "Dermatologist",
			Hospital:      "Skin & Wellness Clinic",
			Location:      "Westside",
			Rating:        4.9,
			Reviews:       189,
			Experience:    12,
			Fee:           90,
			Available:     true,
			NextAvailable: "Tomorrow, 10:00 AM",
			Languages:     []string{"English", "Spanish"},
		},
		{
			ID:            "4",
			Name:          "Dr. James Wilson",
			Specialty:     "Orthopedic",
			Hospital:      "Bone & Joint Hospital",
			Location:      "Northside",
			Rating:        4.7,
			Reviews:       412,
			Experience:    18,
			Fee:           110,
			Available:     false,
			NextAvailable: "Mon, 9:00 AM",
			Languages:     []string{"English"},
		},
		{
			ID:            "5",
			Name:          "Dr. Priya Sharma",
			Specialty:     "Pediatrician",
			Hospital:      "Children's Health Center",
			Location:      "Eastside",
			Rating:        4.9,
			Reviews:       298,
			Experience:    10,
			Fee:           70,
			Available:     true,
			NextAvailable: "Today, 3:00 PM",
			Languages:     []string{"English", "Hindi"},
		},
		{
			ID:            "6",
			Name:          "Dr. Robert Brown",
			Specialty:     "Neurologist",
			Hospital:      "Neuro Sciences Center",
			Location:      "Medical District",
			Rating:        4.6,
			Reviews:       167,
			Experience:    22,
			Fee:           130,
			Available:     true,
			NextAvailable: "Tomorrow, 11:00 AM",
			Languages:     []string{"English", "French"},
		},
		{
			ID:            "7",
			Name:          "Dr. Aisha Khan",
			Specialty:     "ENT Specialist",
			Hospital:      "City Medical Center",
			Location:      "Downtown",
			Rating:        4.8,
			Reviews:       143,
			Experience:    9,
			Fee:           80,
			Available:     true,
			NextAvailable: "Today, 5:00 PM",
			Languages:     []string{"English", "Urdu"},
		},
		{
			ID:            "8",
			Name:          "Dr. David Park",
			Specialty:     "Gastroenterologist",
			Hospital:      "Digestive Health Clinic",
			Location:      "Southside",
			Rating:        4.7,
			Reviews:       201,
			Experience:    14,
			Fee:           100,
			Available:     false,
			NextAvailable: "Wed, 2:00 PM",
			Languages:     []string{"English", "Korean"},
		},
	}
}
