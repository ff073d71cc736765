package maintenance

// DefaultItems is the fixed item catalog the legacy system schedules against.
var DefaultItems = []string{
	"Niveau d'huile du carter",
	"Etanchéité de tous les circuits",
	"Frein",
	"courroie",
	"Filtre à huile",
	"Vidanger le carter moteur",
	"Filtre à air",
	"Filtre carburant",
	"chaine",
	"soupape",
	"Graissage général",
	"moyeu de roue",
	"pneu",
	"boite de vitesse",
	"cardan",
	"embrayage",
	"circuit hydraulique",
	"pompe hydraulique",
	"Filtre hydraulique",
	"Réservoir hydraulique",
	"alternateur",
	"batterie",
	"Faisceaux électriques",
}

// DefaultIntervalDays is the per-track cadence seeded for every default item.
var DefaultIntervalDays = map[Track]int{
	TrackControl: 30,
	TrackClean:   90,
	TrackReplace: 180,
}

// DefaultExclusions lists, per vehicle category, the items that category
// never gets scheduled for.
var DefaultExclusions = map[string][]string{
	"GEG": {
		"frein", "chaine", "pneu", "moyeu de roue", "graissage général",
		"boite de vitesse", "cardan", "embrayage", "circuit hydraulique",
		"pompe hydraulique", "filtre hydraulique", "réservoir hydraulique",
		"faisceaux électriques",
	},
	"AIR COMPRIME": {
		"frein", "chaine", "pneu", "moyeu de roue", "graissage général",
		"boite de vitesse", "cardan", "embrayage", "circuit hydraulique",
		"pompe hydraulique", "faisceaux électriques",
	},
	"LEGER": {
		"graissage général", "circuit hydraulique", "pompe hydraulique",
		"filtre hydraulique", "réservoir hydraulique", "faisceaux électriques",
	},
	"TRANS/MARCHANDISE 1": {
		"niveau d'huile du carter", "etanchéité des circuits", "courroie",
		"filtre à huile", "vidanger le carter moteur", "filtre à air",
		"filtre carburant", "chaine", "soupape", "boite de vitesse", "cardan",
		"embrayage", "circuit hydraulique", "pompe hydraulique",
		"filtre hydraulique", "réservoir hydraulique", "alternateur",
		"batterie", "faisceaux électriques",
	},
	"TRANS ET V, SPECIAUX 1": {
		"niveau d'huile du carter", "etanchéité des circuits", "courroie",
		"filtre à huile", "vidanger le carter moteur", "filtre à air",
		"filtre carburant", "chaine", "soupape", "boite de vitesse", "cardan",
		"embrayage", "circuit hydraulique", "pompe hydraulique",
		"filtre hydraulique", "réservoir hydraulique", "alternateur",
		"batterie", "faisceaux électriques",
	},
	"TRANS/PERSONNEL": {
		"niveau d'huile du carter", "circuit hydraulique", "pompe hydraulique",
		"filtre hydraulique", "réservoir hydraulique", "faisceaux électriques",
	},
	"TRANS/BENNE.R": {
		"embrayage", "chaine", "boite de vitesse", "alternateur",
		"faisceaux électriques",
	},
}
