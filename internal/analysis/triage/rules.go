package triage

// Rule pairs a term set with the document returned when any term matches.
type Rule struct {
	Category Category
	Label    string
	Terms    []string
	Document Document
}

func (r Rule) clone() Rule {
	r.Terms = append([]string(nil), r.Terms...)
	r.Document = r.Document.Clone()
	return r
}

// Specialties referenced by the closing lines. They match the doctor directory.
const (
	GeneralPhysician   = "General Physician"
	ENTSpecialist      = "ENT Specialist"
	Gastroenterologist = "Gastroenterologist"
	Orthopedic         = "Orthopedic"
	Dermatologist      = "Dermatologist"
)

// rules is evaluated top to bottom; the first match wins.
var rules = []Rule{
	{
		Category: Headache,
		Label:    "Headaches & Migraines",
		Terms:    []string{"headache", "head pain", "migraine"},
		Document: Document{
			Category: Headache,
			Headline: analysis("Based on your description of ", "headache symptoms"),
			Sections: []Section{
				causes(
					li("Tension headache", "Most common, caused by stress or muscle tension"),
					li("Migraine", "Often with nausea, light sensitivity"),
					li("Dehydration", "Lack of fluids can trigger headaches"),
					li("Eye strain", "From screens or reading"),
				),
				medicines("Suggested Over-the-Counter Medicines:",
					li("Paracetamol (Tylenol)", "500-1000mg every 4-6 hours"),
					li("Ibuprofen (Advil)", "200-400mg with food"),
					li("Aspirin", "500mg (not for children under 16)"),
				),
				homeCare("Home Remedies:",
					"Rest in a dark, quiet room",
					"Apply cold compress to forehead",
					"Stay hydrated (8 glasses of water)",
					"Avoid screen time",
				),
				escalation("See a Doctor If:",
					`Severe, sudden headache ("thunderclap")`,
					"Fever, stiff neck, or confusion",
					"Headache after injury",
					"Symptoms persist beyond 3 days",
				),
			},
			Closing:  plain("Would you like me to help you find a doctor for consultation?"),
			Referral: GeneralPhysician,
		},
	},
	{
		Category: Fever,
		Label:    "Fever & Chills",
		Terms:    []string{"fever", "temperature", "chills"},
		Document: Document{
			Category: Fever,
			Headline: analysis("Based on your ", "fever symptoms"),
			Sections: []Section{
				causes(
					li("Viral infection", "Cold, flu, COVID-19"),
					li("Bacterial infection", "May need antibiotics"),
					li("Inflammatory conditions", ""),
				),
				medicines("Suggested Over-the-Counter Medicines:",
					li("Paracetamol (Tylenol)", "500-1000mg every 4-6 hours"),
					li("Ibuprofen", "Helps reduce fever and inflammation"),
				),
				homeCare("Home Care:",
					"Rest and sleep",
					"Drink plenty of fluids",
					"Light, loose clothing",
					"Lukewarm sponge bath",
				),
				escalation("See a Doctor Immediately If:",
					"Temperature above 103°F (39.4°C)",
					"Fever lasting more than 3 days",
					"Severe headache, rash, or stiff neck",
					"Difficulty breathing",
					"Confusion or unusual behavior",
				),
			},
			Closing:  plain("Shall I help you book an appointment with a General Physician?"),
			Referral: GeneralPhysician,
		},
	},
	{
		Category: Cold,
		Label:    "Cold, Cough & Sore Throat",
		Terms:    []string{"cough", "cold", "sore throat", "runny nose"},
		Document: Document{
			Category: Cold,
			Headline: analysis("Based on your ", "cold/cough symptoms"),
			Sections: []Section{
				causes(
					li("Common cold", "Viral, self-limiting"),
					li("Flu (Influenza)", "More severe symptoms"),
					li("Allergies", "Seasonal or environmental"),
					li("Throat infection", "Bacterial or viral"),
				),
				medicines("Suggested Medicines:",
					li("For dry cough:", "Dextromethorphan (Robitussin DM)"),
					li("For wet cough:", "Guaifenesin (Mucinex)"),
					li("Sore throat:", "Lozenges, warm salt water gargle"),
					li("Congestion:", "Pseudoephedrine (Sudafed)"),
					li("Runny nose:", "Antihistamines (Cetirizine, Loratadine)"),
				),
				homeCare("Home Remedies:",
					"Honey with warm water or tea",
					"Steam inhalation",
					"Rest and hydration",
					"Vitamin C supplements",
				),
				escalation("See a Doctor If:",
					"Cough lasts more than 2 weeks",
					"Blood in mucus",
					"High fever with chills",
					"Difficulty breathing or chest pain",
				),
			},
			Closing:  plain("Would you like to consult an ENT specialist?"),
			Referral: ENTSpecialist,
		},
	},
	{
		Category: Digestive,
		Label:    "Stomach Issues & Nausea",
		Terms:    []string{"stomach", "nausea", "vomit", "diarrhea", "digestion"},
		Document: Document{
			Category: Digestive,
			Headline: analysis("Based on your ", "digestive symptoms"),
			Sections: []Section{
				causes(
					li("Food poisoning", "Contaminated food/water"),
					li("Gastritis", "Stomach inflammation"),
					li("Viral gastroenteritis", "Stomach flu"),
					li("Indigestion", "Overeating or spicy food"),
				),
				medicines("Suggested Medicines:",
					li("Nausea/Vomiting:", "Ondansetron, Domperidone"),
					li("Acidity:", "Antacids (Tums), Omeprazole"),
					li("Diarrhea:", "Loperamide (Imodium)"),
					li("Cramps:", "Hyoscine (Buscopan)"),
				),
				homeCare("Home Care:",
					"Clear fluids (ORS, clear broth)",
					"BRAT diet (Banana, Rice, Apple, Toast)",
					"Avoid dairy and fatty foods",
					"Small, frequent meals",
				),
				escalation("Seek Immediate Care If:",
					"Blood in stool or vomit",
					"Severe abdominal pain",
					"Signs of dehydration",
					"Symptoms lasting more than 48 hours",
				),
			},
			Closing:  plain("Should I find a Gastroenterologist near you?"),
			Referral: Gastroenterologist,
		},
	},
	{
		Category: Pain,
		Label:    "Body Pain & Muscle Aches",
		Terms:    []string{"body pain", "muscle", "joint", "back pain"},
		Document: Document{
			Category: Pain,
			Headline: analysis("Based on your ", "pain symptoms"),
			Sections: []Section{
				causes(
					li("Muscle strain", "Overexertion or injury"),
					li("Viral infection", "Body aches common with flu"),
					li("Poor posture", "Especially for back pain"),
					li("Arthritis", "Joint inflammation"),
				),
				medicines("Suggested Medicines:",
					li("Pain relief:", "Ibuprofen, Naproxen"),
					li("Muscle relaxant:", "Topical gels (Voltaren, Bengay)"),
					li("For inflammation:", "Diclofenac"),
				),
				homeCare("Self-Care:",
					"Rest the affected area",
					"Ice pack for 20 mins (first 48 hours)",
					"Warm compress after 48 hours",
					"Gentle stretching",
				),
				escalation("See a Doctor If:",
					"Pain after injury or fall",
					"Numbness or tingling",
					"Swelling or redness",
					"Pain that worsens or doesn't improve",
				),
			},
			Closing:  plain("Want me to connect you with an Orthopedic specialist?"),
			Referral: Orthopedic,
		},
	},
	{
		Category: Skin,
		Label:    "Skin Problems & Rashes",
		Terms:    []string{"skin", "rash", "itch", "acne"},
		Document: Document{
			Category: Skin,
			Headline: analysis("Based on your ", "skin symptoms"),
			Sections: []Section{
				causes(
					li("Allergic reaction", "Contact or food allergy"),
					li("Eczema", "Dry, itchy patches"),
					li("Fungal infection", "Ringworm, athlete's foot"),
					li("Acne", "Hormonal or bacterial"),
				),
				medicines("Suggested Medicines:",
					li("Itching:", "Antihistamines (Benadryl, Cetirizine)"),
					li("Mild rash:", "Hydrocortisone cream (1%)"),
					li("Fungal:", "Clotrimazole, Miconazole"),
					li("Acne:", "Benzoyl peroxide, Salicylic acid"),
				),
				homeCare("Skin Care Tips:",
					"Keep affected area clean and dry",
					"Avoid scratching",
					"Use mild, fragrance-free products",
					"Wear loose, cotton clothing",
				),
				escalation("See a Dermatologist If:",
					"Spreading rapidly",
					"Blistering or oozing",
					"Fever with rash",
					"Doesn't improve in a week",
				),
			},
			Closing:  plain("Shall I help you find a Dermatologist?"),
			Referral: Dermatologist,
		},
	},
}

var categoryIcons = map[Category]string{
	Headache:  "🤕",
	Fever:     "🤒",
	Cold:      "🤧",
	Digestive: "🤢",
	Pain:      "💪",
	Skin:      "🩹",
}

func analysis(lead, subject string) []Span {
	return []Span{
		{Text: lead},
		{Text: subject, Strong: true},
		{Text: ", here's my analysis:"},
	}
}

func plain(text string) []Span {
	return []Span{{Text: text}}
}

func li(label, text string) Item {
	return Item{Label: label, Text: text}
}

func bullets(texts ...string) []Item {
	items := make([]Item, 0, len(texts))
	for _, t := range texts {
		items = append(items, Item{Text: t})
	}
	return items
}

func causes(items ...Item) Section {
	return Section{Kind: SectionCauses, Icon: "🔍", Title: "Possible Causes:", Items: items}
}

func medicines(title string, items ...Item) Section {
	return Section{Kind: SectionMedicines, Icon: "💊", Title: title, Ordered: true, Items: items}
}

func homeCare(title string, texts ...string) Section {
	return Section{Kind: SectionHomeCare, Icon: "🏠", Title: title, Items: bullets(texts...)}
}

func escalation(title string, texts ...string) Section {
	return Section{Kind: SectionEscalation, Icon: "🚨", Title: title, Items: bullets(texts...)}
}
