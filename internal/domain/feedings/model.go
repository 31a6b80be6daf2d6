package feedings

import (
	"fmt"
	"time"
)

// DateLayout es el formato de fecha de calendario que acepta el formulario.
const DateLayout = "2006-01-02"

type Meal string

const (
	MealBreakfast Meal = "B"
	MealLunch     Meal = "L"
	MealDinner    Meal = "D"

	// DefaultMeal es la opción preseleccionada en el formulario.
	DefaultMeal = MealBreakfast
)

// Meals devuelve las opciones en el orden del formulario.
func Meals() []Meal {
	return []Meal{MealBreakfast, MealLunch, MealDinner}
}

func (m Meal) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

func (m Meal) Display() string {
	switch m {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	default:
		return string(m)
	}
}

// Feeding es una comida registrada; vive y muere con su gato.
type Feeding struct {
	ID    string
	CatID string

	Date time.Time // medianoche UTC
	Meal Meal

	CreatedAt time.Time
}

func (f Feeding) String() string {
	return fmt.Sprintf("%s on %s", f.Meal.Display(), f.Date.Format(DateLayout))
}
