package models

// All returns every persisted model in dependency order, for migrations and
// code generation.
func All() []any {
	return []any{
		&Technology{},
		&Tag{},
		&Project{},
		&BlogPost{},
		&Skill{},
		&Contact{},
	}
}
