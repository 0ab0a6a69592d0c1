package components

// FoodComponent tags the food entity
type FoodComponent struct{}
