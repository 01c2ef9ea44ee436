package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard       string `yaml:"add_card"`
	EditCard      string `yaml:"edit_card"`
	DeleteCard    string `yaml:"delete_card"`
	OpenCard      string `yaml:"open_card"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`
	MoveCardUp    string `yaml:"move_card_up"`
	MoveCardDown  string `yaml:"move_card_down"`

	// Lists
	AddList       string `yaml:"add_list"`
	EditList      string `yaml:"edit_list"`
	DeleteList    string `yaml:"delete_list"`
	MoveListLeft  string `yaml:"move_list_left"`
	MoveListRight string `yaml:"move_list_right"`

	// Boards
	AddBoard    string `yaml:"add_board"`
	EditBoard   string `yaml:"edit_board"`
	DeleteBoard string `yaml:"delete_board"`

	// Navigation
	PrevList string `yaml:"prev_list"`
	NextList string `yaml:"next_list"`
	PrevCard string `yaml:"prev_card"`
	NextCard string `yaml:"next_card"`
	Back     string `yaml:"back"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:       "a",
		EditCard:      "e",
		DeleteCard:    "d",
		OpenCard:      "enter",
		MoveCardLeft:  "H",
		MoveCardRight: "L",
		MoveCardUp:    "K",
		MoveCardDown:  "J",

		// Lists
		AddList:       "A",
		EditList:      "R",
		DeleteList:    "X",
		MoveListLeft:  "<",
		MoveListRight: ">",

		// Boards
		AddBoard:    "n",
		EditBoard:   "r",
		DeleteBoard: "x",

		// Navigation
		PrevList: "h",
		NextList: "l",
		PrevCard: "k",
		NextCard: "j",
		Back:     "esc",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in any unset key bindings
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	if k.AddCard == "" {
		k.AddCard = defaults.AddCard
	}
	if k.EditCard == "" {
		k.EditCard = defaults.EditCard
	}
	if k.DeleteCard == "" {
		k.DeleteCard = defaults.DeleteCard
	}
	if k.OpenCard == "" {
		k.OpenCard = defaults.OpenCard
	}
	if k.MoveCardLeft == "" {
		k.MoveCardLeft = defaults.MoveCardLeft
	}
	if k.MoveCardRight == "" {
		k.MoveCardRight = defaults.MoveCardRight
	}
	if k.MoveCardUp == "" {
		k.MoveCardUp = defaults.MoveCardUp
	}
	if k.MoveCardDown == "" {
		k.MoveCardDown = defaults.MoveCardDown
	}
	if k.AddList == "" {
		k.AddList = defaults.AddList
	}
	if k.EditList == "" {
		k.EditList = defaults.EditList
	}
	if k.DeleteList == "" {
		k.DeleteList = defaults.DeleteList
	}
	if k.MoveListLeft == "" {
		k.MoveListLeft = defaults.MoveListLeft
	}
	if k.MoveListRight == "" {
		k.MoveListRight = defaults.MoveListRight
	}
	if k.AddBoard == "" {
		k.AddBoard = defaults.AddBoard
	}
	if k.EditBoard == "" {
		k.EditBoard = defaults.EditBoard
	}
	if k.DeleteBoard == "" {
		k.DeleteBoard = defaults.DeleteBoard
	}
	if k.PrevList == "" {
		k.PrevList = defaults.PrevList
	}
	if k.NextList == "" {
		k.NextList = defaults.NextList
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.Back == "" {
		k.Back = defaults.Back
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
