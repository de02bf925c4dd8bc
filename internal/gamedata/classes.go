package gamedata

// DefaultClassID is the class used when none is chosen.
const DefaultClassID = "hero"

// ClassDef defines a playable hero class loaded from JSON.
type ClassDef struct {
	ID       string `json:"id"`       // Unique identifier (e.g., "rogue")
	Name     string `json:"name"`     // Display name (e.g., "Rogue")
	HP       int    `json:"hp"`       // Starting hit points
	Strength int    `json:"strength"` // Damage dealt per strike
	Radius   int    `json:"radius"`   // Starting vision radius
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}
