package vocabulary

import "italiano/internal/domain"

// tables keeps every category in its defined order
var tables = map[Category][]domain.WordPair{
	Greetings: {
		{Word: "Ciao", Translation: "Hello/Hi"},
		{Word: "Buongiorno", Translation: "Good morning"},
		{Word: "Buonasera", Translation: "Good evening"},
		{Word: "Arrivederci", Translation: "Goodbye"},
		{Word: "Grazie", Translation: "Thank you"},
		{Word: "Prego", Translation: "You're welcome"},
	},
	Numbers: {
		{Word: "Uno", Translation: "One"},
		{Word: "Due", Translation: "Two"},
		{Word: "Tre", Translation: "Three"},
		{Word: "Quattro", Translation: "Four"},
		{Word: "Cinque", Translation: "Five"},
	},
	Colors: {
		{Word: "Rosso", Translation: "Red"},
		{Word: "Blu", Translation: "Blue"},
		{Word: "Verde", Translation: "Green"},
		{Word: "Giallo", Translation: "Yellow"},
		{Word: "Nero", Translation: "Black"},
	},

	Family: {
		{Word: "famiglia", Translation: "family"},
		{Word: "madre", Translation: "mother"},
		{Word: "padre", Translation: "father"},
		{Word: "sorella", Translation: "sister"},
		{Word: "fratello", Translation: "brother"},
		{Word: "nonna", Translation: "grandmother"},
		{Word: "nonno", Translation: "grandfather"},
		{Word: "zia", Translation: "aunt"},
		{Word: "zio", Translation: "uncle"},
		{Word: "cugino", Translation: "cousin"},
	},
	Food: {
		{Word: "colazione", Translation: "breakfast"},
		{Word: "pranzo", Translation: "lunch"},
		{Word: "cena", Translation: "dinner"},
		{Word: "ristorante", Translation: "restaurant"},
		{Word: "cameriere", Translation: "waiter"},
		{Word: "menu", Translation: "menu"},
		{Word: "conto", Translation: "bill"},
		{Word: "tavolo", Translation: "table"},
		{Word: "cucina", Translation: "kitchen"},
		{Word: "ingredienti", Translation: "ingredients"},
	},
	Travel: {
		{Word: "aeroporto", Translation: "airport"},
		{Word: "stazione", Translation: "station"},
		{Word: "biglietto", Translation: "ticket"},
		{Word: "valigia", Translation: "suitcase"},
		{Word: "passaporto", Translation: "passport"},
		{Word: "hotel", Translation: "hotel"},
		{Word: "camera", Translation: "room"},
		{Word: "reception", Translation: "reception"},
		{Word: "mappa", Translation: "map"},
		{Word: "direzioni", Translation: "directions"},
	},
	Emotions: {
		{Word: "felice", Translation: "happy"},
		{Word: "triste", Translation: "sad"},
		{Word: "arrabbiato", Translation: "angry"},
		{Word: "nervoso", Translation: "nervous"},
		{Word: "rilassato", Translation: "relaxed"},
		{Word: "eccitato", Translation: "excited"},
		{Word: "stanco", Translation: "tired"},
		{Word: "sorpreso", Translation: "surprised"},
		{Word: "preoccupato", Translation: "worried"},
		{Word: "orgoglioso", Translation: "proud"},
	},
	DailyActivities: {
		{Word: "svegliarsi", Translation: "to wake up"},
		{Word: "lavarsi", Translation: "to wash"},
		{Word: "vestirsi", Translation: "to get dressed"},
		{Word: "fare colazione", Translation: "to have breakfast"},
		{Word: "andare al lavoro", Translation: "to go to work"},
		{Word: "tornare a casa", Translation: "to come home"},
		{Word: "cucinare", Translation: "to cook"},
		{Word: "guardare la TV", Translation: "to watch TV"},
		{Word: "leggere", Translation: "to read"},
		{Word: "dormire", Translation: "to sleep"},
	},
}
