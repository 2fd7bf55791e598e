package quran

import "errors"

var ErrJuzOutOfRange = errors.New("juz number must be between 1 and 30")

// JuzCount is the number of sections the Quran is divided into.
const JuzCount = 30

// Marker is the (surah, ayah) pair where a juz begins.
type Marker struct {
	Surah int
	Ayah  int
}

// Range is the inclusive span of verses covered by a juz.
type Range struct {
	Start Marker
	End   Marker
}

// juzStarts holds the canonical start marker of each juz, indexed 1..30.
// Index 0 is unused.
var juzStarts = [JuzCount + 1]Marker{
	1:  {1, 1},
	2:  {2, 142},
	3:  {2, 253},
	4:  {3, 93},
	5:  {4, 24},
	6:  {4, 148},
	7:  {5, 82},
	8:  {6, 111},
	9:  {7, 88},
	10: {8, 41},
	11: {9, 93},
	12: {11, 6},
	13: {12, 53},
	14: {15, 1},
	15: {17, 1},
	16: {18, 75},
	17: {21, 1},
	18: {23, 1},
	19: {25, 21},
	20: {27, 56},
	21: {29, 46},
	22: {33, 31},
	23: {36, 28},
	24: {39, 32},
	25: {41, 47},
	26: {46, 1},
	27: {51, 31},
	28: {58, 1},
	29: {67, 1},
	30: {78, 1},
}

// less orders markers lexicographically: surah first, ayah second.
func (m Marker) less(other Marker) bool {
	if m.Surah != other.Surah {
		return m.Surah < other.Surah
	}
	return m.Ayah < other.Ayah
}

// JuzOf returns the juz number (1-30) containing the given verse. A verse
// before the first marker (only possible with invalid input) maps to juz 1.
func JuzOf(surah, ayah int) int {
	query := Marker{Surah: surah, Ayah: ayah}
	for juz := JuzCount; juz >= 1; juz-- {
		start := juzStarts[juz]
		if !query.less(start) {
			return juz
		}
	}
	return 1
}

// JuzRange returns the inclusive verse span of a juz. The last juz runs to
// the final ayah of the final surah.
func JuzRange(juz int) (Range, error) {
	if juz < 1 || juz > JuzCount {
		return Range{}, ErrJuzOutOfRange
	}

	start := juzStarts[juz]
	if juz == JuzCount {
		lastSurah := SurahCount
		return Range{Start: start, End: Marker{lastSurah, AyahCount(lastSurah)}}, nil
	}

	next := juzStarts[juz+1]
	end := Marker{Surah: next.Surah, Ayah: next.Ayah - 1}
	if next.Ayah == 1 {
		// The next juz opens a surah, so this one ends the surah before it.
		end = Marker{Surah: next.Surah - 1, Ayah: AyahCount(next.Surah - 1)}
	}
	return Range{Start: start, End: end}, nil
}
