package panchanga

// Fixed name tables, indexed by the 1-based indices carried in
// Result. The tables are immutable for the process lifetime and
// shared freely across goroutines.

// tithiNames holds the 15 lunar-day names for each paksha. Entries
// 1-14 repeat across the waxing and waning fortnights; the 15th of
// Shukla paksha is the full moon (Poornima) and the 15th of Krishna
// paksha the new moon (Amavasya).
var tithiNames = [30]string{
	"Prathame",
	"Dwithiya",
	"Thrithiya",
	"Chathurthi",
	"Panchami",
	"Shrashti",
	"Saptami",
	"Ashtami",
	"Navami",
	"Dashami",
	"Ekadashi",
	"Dwadashi",
	"Thrayodashi",
	"Chaturdashi",
	"Poornima",
	"Prathame",
	"Dwithiya",
	"Thrithiya",
	"Chathurthi",
	"Panchami",
	"Shrashti",
	"Saptami",
	"Ashtami",
	"Navami",
	"Dashami",
	"Ekadashi",
	"Dwadashi",
	"Thrayodashi",
	"Chaturdashi",
	"Amavasya",
}

// nakshatraNames holds the 27 lunar mansions, 13°20' of sidereal
// lunar longitude each.
var nakshatraNames = [27]string{
	"Ashwini",
	"Bharani",
	"Krittika",
	"Rohini",
	"Mrigashira",
	"Ardhra",
	"Punarvasu",
	"Pushya",
	"Ashlesa",
	"Magha",
	"Poorva Phalguni",
	"Uttara Phalguni",
	"Hasta",
	"Chitra",
	"Swathi",
	"Vishaka",
	"Anuradha",
	"Jyeshta",
	"Mula",
	"Poorva Ashada",
	"Uttara Ashada",
	"Sravana",
	"Dhanishta",
	"Shatabisha",
	"Poorva Bhadra",
	"Uttara Bhadra",
	"Revathi",
}

// yogaNames holds the 27 segments of the combined solar and lunar
// longitude sum.
var yogaNames = [27]string{
	"Vishkambha",
	"Prithi",
	"Ayushman",
	"Saubhagya",
	"Shobhana",
	"Atiganda",
	"Sukarman",
	"Dhrithi",
	"Shoola",
	"Ganda",
	"Vridhi",
	"Dhruva",
	"Vyaghata",
	"Harshana",
	"Vajra",
	"Siddhi",
	"Vyatipata",
	"Variyan",
	"Parigha",
	"Shiva",
	"Siddha",
	"Sadhya",
	"Shubha",
	"Shukla",
	"Bramha",
	"Indra",
	"Vaidhruthi",
}

// karanaNames holds the 11 half-tithi names: seven movable names
// that cycle through the interior of the lunar month, then the four
// fixed names that each occur exactly once.
var karanaNames = [11]string{
	"Bava",
	"Balava",
	"Kaulava",
	"Taitula",
	"Garija",
	"Vanija",
	"Vishti",
	"Shakuni",
	"Chatushpada",
	"Naga",
	"Kimstughna",
}

// rashiNames holds the 12 zodiac signs, 30° of sidereal lunar
// longitude each.
var rashiNames = [12]string{
	"Mesha",
	"Vrishabha",
	"Mithuna",
	"Karka",
	"Simha",
	"Kanya",
	"Tula",
	"Vrischika",
	"Dhanu",
	"Makara",
	"Kumbha",
	"Meena",
}
