package quran

// SurahCount is the number of chapters in the Quran.
const SurahCount = 114

// Surah is the static metadata for one chapter.
type Surah struct {
	Number     int    `json:"number"`
	Name       string `json:"name"`
	ArabicName string `json:"arabicName"`
	TotalAyahs int    `json:"totalAyahs"`
}

// surahs is indexed 1..114; index 0 is unused.
var surahs = [SurahCount + 1]Surah{
	1:   {1, "Al-Fatihah", "الفاتحة", 7},
	2:   {2, "Al-Baqarah", "البقرة", 286},
	3:   {3, "Ali 'Imran", "آل عمران", 200},
	4:   {4, "An-Nisa", "النساء", 176},
	5:   {5, "Al-Ma'idah", "المائدة", 120},
	6:   {6, "Al-An'am", "الأنعام", 165},
	7:   {7, "Al-A'raf", "الأعراف", 206},
	8:   {8, "Al-Anfal", "الأنفال", 75},
	9:   {9, "At-Tawbah", "التوبة", 129},
	10:  {10, "Yunus", "يونس", 109},
	11:  {11, "Hud", "هود", 123},
	12:  {12, "Yusuf", "يوسف", 111},
	13:  {13, "Ar-Ra'd", "الرعد", 43},
	14:  {14, "Ibrahim", "إبراهيم", 52},
	15:  {15, "Al-Hijr", "الحجر", 99},
	16:  {16, "An-Nahl", "النحل", 128},
	17:  {17, "Al-Isra", "الإسراء", 111},
	18:  {18, "Al-Kahf", "الكهف", 110},
	19:  {19, "Maryam", "مريم", 98},
	20:  {20, "Taha", "طه", 135},
	21:  {21, "Al-Anbya", "الأنبياء", 112},
	22:  {22, "Al-Hajj", "الحج", 78},
	23:  {23, "Al-Mu'minun", "المؤمنون", 118},
	24:  {24, "An-Nur", "النور", 64},
	25:  {25, "Al-Furqan", "الفرقان", 77},
	26:  {26, "Ash-Shu'ara", "الشعراء", 227},
	27:  {27, "An-Naml", "النمل", 93},
	28:  {28, "Al-Qasas", "القصص", 88},
	29:  {29, "Al-'Ankabut", "العنكبوت", 69},
	30:  {30, "Ar-Rum", "الروم", 60},
	31:  {31, "Luqman", "لقمان", 34},
	32:  {32, "As-Sajdah", "السجدة", 30},
	33:  {33, "Al-Ahzab", "الأحزاب", 73},
	34:  {34, "Saba", "سبأ", 54},
	35:  {35, "Fatir", "فاطر", 45},
	36:  {36, "Ya-Sin", "يس", 83},
	37:  {37, "As-Saffat", "الصافات", 182},
	38:  {38, "Sad", "ص", 88},
	39:  {39, "Az-Zumar", "الزمر", 75},
	40:  {40, "Ghafir", "غافر", 85},
	41:  {41, "Fussilat", "فصلت", 54},
	42:  {42, "Ash-Shuraa", "الشورى", 53},
	43:  {43, "Az-Zukhruf", "الزخرف", 89},
	44:  {44, "Ad-Dukhan", "الدخان", 59},
	45:  {45, "Al-Jathiyah", "الجاثية", 37},
	46:  {46, "Al-Ahqaf", "الأحقاف", 35},
	47:  {47, "Muhammad", "محمد", 38},
	48:  {48, "Al-Fath", "الفتح", 29},
	49:  {49, "Al-Hujurat", "الحجرات", 18},
	50:  {50, "Qaf", "ق", 45},
	51:  {51, "Adh-Dhariyat", "الذاريات", 60},
	52:  {52, "At-Tur", "الطور", 49},
	53:  {53, "An-Najm", "النجم", 62},
	54:  {54, "Al-Qamar", "القمر", 55},
	55:  {55, "Ar-Rahman", "الرحمن", 78},
	56:  {56, "Al-Waqi'ah", "الواقعة", 96},
	57:  {57, "Al-Hadid", "الحديد", 29},
	58:  {58, "Al-Mujadila", "المجادلة", 22},
	59:  {59, "Al-Hashr", "الحشر", 24},
	60:  {60, "Al-Mumtahanah", "الممتحنة", 13},
	61:  {61, "As-Saf", "الصف", 14},
	62:  {62, "Al-Jumu'ah", "الجمعة", 11},
	63:  {63, "Al-Munafiqun", "المنافقون", 11},
	64:  {64, "At-Taghabun", "التغابن", 18},
	65:  {65, "At-Talaq", "الطلاق", 12},
	66:  {66, "At-Tahrim", "التحريم", 12},
	67:  {67, "Al-Mulk", "الملك", 30},
	68:  {68, "Al-Qalam", "القلم", 52},
	69:  {69, "Al-Haqqah", "الحاقة", 52},
	70:  {70, "Al-Ma'arij", "المعارج", 44},
	71:  {71, "Nuh", "نوح", 28},
	72:  {72, "Al-Jinn", "الجن", 28},
	73:  {73, "Al-Muzzammil", "المزمل", 20},
	74:  {74, "Al-Muddaththir", "المدثر", 56},
	75:  {75, "Al-Qiyamah", "القيامة", 40},
	76:  {76, "Al-Insan", "الإنسان", 31},
	77:  {77, "Al-Mursalat", "المرسلات", 50},
	78:  {78, "An-Naba", "النبأ", 40},
	79:  {79, "An-Nazi'at", "النازعات", 46},
	80:  {80, "'Abasa", "عبس", 42},
	81:  {81, "At-Takwir", "التكوير", 29},
	82:  {82, "Al-Infitar", "الانفطار", 19},
	83:  {83, "Al-Mutaffifin", "المطففين", 36},
	84:  {84, "Al-Inshiqaq", "الانشقاق", 25},
	85:  {85, "Al-Buruj", "البروج", 22},
	86:  {86, "At-Tariq", "الطارق", 17},
	87:  {87, "Al-A'la", "الأعلى", 19},
	88:  {88, "Al-Ghashiyah", "الغاشية", 26},
	89:  {89, "Al-Fajr", "الفجر", 30},
	90:  {90, "Al-Balad", "البلد", 20},
	91:  {91, "Ash-Shams", "الشمس", 15},
	92:  {92, "Al-Layl", "الليل", 21},
	93:  {93, "Ad-Duhaa", "الضحى", 11},
	94:  {94, "Ash-Sharh", "الشرح", 8},
	95:  {95, "At-Tin", "التين", 8},
	96:  {96, "Al-'Alaq", "العلق", 19},
	97:  {97, "Al-Qadr", "القدر", 5},
	98:  {98, "Al-Bayyinah", "البينة", 8},
	99:  {99, "Az-Zalzalah", "الزلزلة", 8},
	100: {100, "Al-'Adiyat", "العاديات", 11},
	101: {101, "Al-Qari'ah", "القارعة", 11},
	102: {102, "At-Takathur", "التكاثر", 8},
	103: {103, "Al-'Asr", "العصر", 3},
	104: {104, "Al-Humazah", "الهمزة", 9},
	105: {105, "Al-Fil", "الفيل", 5},
	106: {106, "Quraysh", "قريش", 4},
	107: {107, "Al-Ma'un", "الماعون", 7},
	108: {108, "Al-Kawthar", "الكوثر", 3},
	109: {109, "Al-Kafirun", "الكافرون", 6},
	110: {110, "An-Nasr", "النصر", 3},
	111: {111, "Al-Masad", "المسد", 5},
	112: {112, "Al-Ikhlas", "الإخلاص", 4},
	113: {113, "Al-Falaq", "الفلق", 5},
	114: {114, "An-Nas", "الناس", 6},
}

// Surahs returns the metadata of all 114 chapters in order.
func Surahs() []Surah {
	return surahs[1:]
}

// SurahByNumber returns the metadata of one chapter, or false when the
// number is out of range.
func SurahByNumber(number int) (Surah, bool) {
	if number < 1 || number > SurahCount {
		return Surah{}, false
	}
	return surahs[number], true
}

// AyahCount returns the number of verses in a surah, or 0 when the surah
// number is out of range.
func AyahCount(surah int) int {
	if surah < 1 || surah > SurahCount {
		return 0
	}
	return surahs[surah].TotalAyahs
}

// ValidVerse reports whether (surah, ayah) identifies an existing verse.
func ValidVerse(surah, ayah int) bool {
	return ayah >= 1 && ayah <= AyahCount(surah)
}
