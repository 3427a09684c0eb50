package domain

import "strings"

// CategoryTag нормализованный тег категории
// Правила сопоставления неоднородны намеренно: коворкинг и детские занятия
// исторически заводились с произвольными названиями ("Коворкинг утро",
// "Eywa Kids 6-10"), поэтому для них используется поиск по подстроке,
// а групповые категории сопоставляются строго
type CategoryTag string

const (
	TagBodyMind  CategoryTag = "body"
	TagReformer  CategoryTag = "reform"
	TagCoworking CategoryTag = "coworking"
	TagKids      CategoryTag = "kids"
	TagOther     CategoryTag = "other"
)

// подстроки для мягкого сопоставления, в нижнем регистре
var (
	coworkingMarkers = []string{"коворкинг", "coworking"}
	kidsMarkers      = []string{"kids", "детск"}
)

// ClassifyCategory относит произвольную строку категории к тегу
func ClassifyCategory(category string) CategoryTag {
	switch category {
	case CategoryBodyMind:
		return TagBodyMind
	case CategoryPilatesReformer:
		return TagReformer
	}

	lower := strings.ToLower(category)
	for _, marker := range coworkingMarkers {
		if strings.Contains(lower, marker) {
			return TagCoworking
		}
	}
	for _, marker := range kidsMarkers {
		if strings.Contains(lower, marker) {
			return TagKids
		}
	}

	return TagOther
}

// CoworkingLikePatterns SQL ILIKE-шаблоны для отбора коворкинг-записей
func CoworkingLikePatterns() []string {
	return []string{"%коворкинг%", "%coworking%"}
}

// KidsLikePatterns SQL ILIKE-шаблоны для отбора детских записей
func KidsLikePatterns() []string {
	return []string{"%kids%", "%детск%"}
}
