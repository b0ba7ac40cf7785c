package generation

import "github.com/alexanderramin/gesta/internal/domain"

// StatLore is the fixed flavor content for one stat.
type StatLore struct {
	Realm       string
	Actions     []string
	Enemies     []string
	Weapons     []string
	Places      []string
	Reward      string
	Description string // fmt template, %s receives the prompt
}

// DifficultyFlavor is the title vocabulary for one difficulty.
type DifficultyFlavor struct {
	Prefix    string
	Intensity string
}

// Lore is the complete content table the generator draws from.
type Lore struct {
	Stats        map[domain.Stat]StatLore
	Difficulties map[domain.Difficulty]DifficultyFlavor
	Generic      domain.EpicElements
	GenericDesc  string // fmt template, %s receives the prompt
}

// DefaultLore returns a fresh copy of the built-in lore.
func DefaultLore() Lore {
	return Lore{
		Stats: map[domain.Stat]StatLore{
			domain.StatStrength: {
				Realm:       "templo del hierro",
				Actions:     []string{"Forjar", "Conquistar", "Entrenar", "Resistir"},
				Enemies:     []string{"el Titán de la Pereza", "el Golem del Sofá", "la Bestia del Cansancio"},
				Weapons:     []string{"mancuernas encantadas", "la espada del esfuerzo", "el escudo de la constancia"},
				Places:      []string{"la Arena de Acero", "la Montaña del Sudor", "el Coliseo Eterno"},
				Reward:      "fuerza renovada",
				Description: "Las puertas del templo del hierro se abren ante ti. Demuestra tu fuerza y cumple tu objetivo: %s.",
			},
			domain.StatDexterity: {
				Realm:       "taller de las artes",
				Actions:     []string{"Crear", "Esculpir", "Componer", "Tejer"},
				Enemies:     []string{"el Espectro del Bloqueo", "la Sombra de la Duda", "el Duende del Desorden"},
				Weapons:     []string{"el pincel arcano", "la lira encantada", "las agujas de plata"},
				Places:      []string{"el Taller Encantado", "la Galería de los Sueños", "la Forja Creativa"},
				Reward:      "maestría creativa",
				Description: "En el taller de las artes, tus manos son la herramienta más valiosa. Perfecciona tu oficio: %s.",
			},
			domain.StatWisdom: {
				Realm:       "biblioteca ancestral",
				Actions:     []string{"Descifrar", "Estudiar", "Investigar", "Dominar"},
				Enemies:     []string{"el Dragón de la Ignorancia", "la Niebla del Olvido", "el Laberinto de la Distracción"},
				Weapons:     []string{"el tomo de los sabios", "la pluma de fénix", "el orbe del conocimiento"},
				Places:      []string{"la Torre del Saber", "el Archivo Perdido", "el Observatorio Estelar"},
				Reward:      "sabiduría ancestral",
				Description: "Los pasillos de la biblioteca ancestral guardan secretos para quien persevera. Tu misión: %s.",
			},
			domain.StatCharisma: {
				Realm:       "corte de los embajadores",
				Actions:     []string{"Inspirar", "Convocar", "Unir", "Persuadir"},
				Enemies:     []string{"el Fantasma de la Timidez", "el Muro del Silencio", "la Hidra del Aislamiento"},
				Weapons:     []string{"la voz del heraldo", "el estandarte de la amistad", "el anillo de la elocuencia"},
				Places:      []string{"la Plaza del Consejo", "el Salón de los Banquetes", "la Taberna de los Héroes"},
				Reward:      "el aprecio de tus aliados",
				Description: "La corte de los embajadores espera tu palabra. Gana aliados y cumple tu encargo: %s.",
			},
		},
		Difficulties: map[domain.Difficulty]DifficultyFlavor{
			domain.DifficultyQuick:    {Prefix: "Rápida", Intensity: "misión"},
			domain.DifficultyStandard: {Prefix: "Noble", Intensity: "aventura"},
			domain.DifficultyLong:     {Prefix: "Épica", Intensity: "campaña"},
			domain.DifficultyEpic:     {Prefix: "Mítica", Intensity: "saga"},
		},
		Generic: domain.EpicElements{
			Realm:  "Reino Misterioso",
			Enemy:  "pereza",
			Weapon: "determinación",
			Reward: "satisfacción personal",
		},
		GenericDesc: "Una misión misteriosa te aguarda: %s. Cada paso te acerca a tu leyenda.",
	}
}

func (l Lore) flavor(d domain.Difficulty) DifficultyFlavor {
	if f, ok := l.Difficulties[d]; ok {
		return f
	}
	return l.Difficulties[domain.DifficultyStandard]
}
