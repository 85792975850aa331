package lexicon

import "github.com/ieee0824/ust2lab-go/phoneme"

// kanaPhonemes maps katakana morae to phoneme sequences of at most
// MaxPhonemes entries. Two-character entries (yōon) are checked before
// single characters (longest match).
var kanaPhonemes = []struct {
	kana     string
	phonemes phoneme.Sequence
}{
	// 拗音 (2文字), matched before single-char entries
	{"キャ", phoneme.Seq(phoneme.PhonK, phoneme.PhonY, phoneme.PhonA)},
	{"キュ", phoneme.Seq(phoneme.PhonK, phoneme.PhonY, phoneme.PhonU)},
	{"キョ", phoneme.Seq(phoneme.PhonK, phoneme.PhonY, phoneme.PhonO)},
	{"ギャ", phoneme.Seq(phoneme.PhonG, phoneme.PhonY, phoneme.PhonA)},
	{"ギュ", phoneme.Seq(phoneme.PhonG, phoneme.PhonY, phoneme.PhonU)},
	{"ギョ", phoneme.Seq(phoneme.PhonG, phoneme.PhonY, phoneme.PhonO)},
	{"シャ", phoneme.Seq(phoneme.PhonSh, phoneme.PhonA)},
	{"シュ", phoneme.Seq(phoneme.PhonSh, phoneme.PhonU)},
	{"ショ", phoneme.Seq(phoneme.PhonSh, phoneme.PhonO)},
	{"ジャ", phoneme.Seq(phoneme.PhonJ, phoneme.PhonA)},
	{"ジュ", phoneme.Seq(phoneme.PhonJ, phoneme.PhonU)},
	{"ジョ", phoneme.Seq(phoneme.PhonJ, phoneme.PhonO)},
	{"チャ", phoneme.Seq(phoneme.PhonCh, phoneme.PhonA)},
	{"チュ", phoneme.Seq(phoneme.PhonCh, phoneme.PhonU)},
	{"チョ", phoneme.Seq(phoneme.PhonCh, phoneme.PhonO)},
	{"ニャ", phoneme.Seq(phoneme.PhonN, phoneme.PhonY, phoneme.PhonA)},
	{"ニュ", phoneme.Seq(phoneme.PhonN, phoneme.PhonY, phoneme.PhonU)},
	{"ニョ", phoneme.Seq(phoneme.PhonN, phoneme.PhonY, phoneme.PhonO)},
	{"ヒャ", phoneme.Seq(phoneme.PhonH, phoneme.PhonY, phoneme.PhonA)},
	{"ヒュ", phoneme.Seq(phoneme.PhonH, phoneme.PhonY, phoneme.PhonU)},
	{"ヒョ", phoneme.Seq(phoneme.PhonH, phoneme.PhonY, phoneme.PhonO)},
	{"ビャ", phoneme.Seq(phoneme.PhonB, phoneme.PhonY, phoneme.PhonA)},
	{"ビュ", phoneme.Seq(phoneme.PhonB, phoneme.PhonY, phoneme.PhonU)},
	{"ビョ", phoneme.Seq(phoneme.PhonB, phoneme.PhonY, phoneme.PhonO)},
	{"ピャ", phoneme.Seq(phoneme.PhonP, phoneme.PhonY, phoneme.PhonA)},
	{"ピュ", phoneme.Seq(phoneme.PhonP, phoneme.PhonY, phoneme.PhonU)},
	{"ピョ", phoneme.Seq(phoneme.PhonP, phoneme.PhonY, phoneme.PhonO)},
	{"ミャ", phoneme.Seq(phoneme.PhonM, phoneme.PhonY, phoneme.PhonA)},
	{"ミュ", phoneme.Seq(phoneme.PhonM, phoneme.PhonY, phoneme.PhonU)},
	{"ミョ", phoneme.Seq(phoneme.PhonM, phoneme.PhonY, phoneme.PhonO)},
	{"リャ", phoneme.Seq(phoneme.PhonR, phoneme.PhonY, phoneme.PhonA)},
	{"リュ", phoneme.Seq(phoneme.PhonR, phoneme.PhonY, phoneme.PhonU)},
	{"リョ", phoneme.Seq(phoneme.PhonR, phoneme.PhonY, phoneme.PhonO)},
	{"ティ", phoneme.Seq(phoneme.PhonT, phoneme.PhonI)},
	{"ディ", phoneme.Seq(phoneme.PhonD, phoneme.PhonI)},
	{"ファ", phoneme.Seq(phoneme.PhonF, phoneme.PhonA)},
	{"フィ", phoneme.Seq(phoneme.PhonF, phoneme.PhonI)},
	{"フェ", phoneme.Seq(phoneme.PhonF, phoneme.PhonE)},
	{"フォ", phoneme.Seq(phoneme.PhonF, phoneme.PhonO)},
	{"フュ", phoneme.Seq(phoneme.PhonF, phoneme.PhonY, phoneme.PhonU)},
	// 外来語拗音
	{"チェ", phoneme.Seq(phoneme.PhonCh, phoneme.PhonE)},
	{"シェ", phoneme.Seq(phoneme.PhonSh, phoneme.PhonE)},
	{"ジェ", phoneme.Seq(phoneme.PhonJ, phoneme.PhonE)},
	{"ウィ", phoneme.Seq(phoneme.PhonU, phoneme.PhonI)},
	{"ウェ", phoneme.Seq(phoneme.PhonU, phoneme.PhonE)},
	{"ウォ", phoneme.Seq(phoneme.PhonU, phoneme.PhonO)},
	{"ヴァ", phoneme.Seq(phoneme.PhonB, phoneme.PhonA)},
	{"ヴィ", phoneme.Seq(phoneme.PhonB, phoneme.PhonI)},
	{"ヴェ", phoneme.Seq(phoneme.PhonB, phoneme.PhonE)},
	{"ヴォ", phoneme.Seq(phoneme.PhonB, phoneme.PhonO)},
	{"トゥ", phoneme.Seq(phoneme.PhonT, phoneme.PhonU)},
	{"ドゥ", phoneme.Seq(phoneme.PhonD, phoneme.PhonU)},
	{"デュ", phoneme.Seq(phoneme.PhonD, phoneme.PhonY, phoneme.PhonU)},
	{"テュ", phoneme.Seq(phoneme.PhonT, phoneme.PhonY, phoneme.PhonU)},
	{"ツァ", phoneme.Seq(phoneme.PhonTs, phoneme.PhonA)},
	{"ツィ", phoneme.Seq(phoneme.PhonTs, phoneme.PhonI)},
	{"ツェ", phoneme.Seq(phoneme.PhonTs, phoneme.PhonE)},
	{"ツォ", phoneme.Seq(phoneme.PhonTs, phoneme.PhonO)},
	{"イェ", phoneme.Seq(phoneme.PhonI, phoneme.PhonE)},
	{"クァ", phoneme.Seq(phoneme.PhonK, phoneme.PhonW, phoneme.PhonA)},
	{"グァ", phoneme.Seq(phoneme.PhonG, phoneme.PhonW, phoneme.PhonA)},

	// 単独カナ
	// ア行
	{"ア", phoneme.Seq(phoneme.PhonA)},
	{"イ", phoneme.Seq(phoneme.PhonI)},
	{"ウ", phoneme.Seq(phoneme.PhonU)},
	{"エ", phoneme.Seq(phoneme.PhonE)},
	{"オ", phoneme.Seq(phoneme.PhonO)},
	// カ行
	{"カ", phoneme.Seq(phoneme.PhonK, phoneme.PhonA)},
	{"キ", phoneme.Seq(phoneme.PhonK, phoneme.PhonI)},
	{"ク", phoneme.Seq(phoneme.PhonK, phoneme.PhonU)},
	{"ケ", phoneme.Seq(phoneme.PhonK, phoneme.PhonE)},
	{"コ", phoneme.Seq(phoneme.PhonK, phoneme.PhonO)},
	// ガ行
	{"ガ", phoneme.Seq(phoneme.PhonG, phoneme.PhonA)},
	{"ギ", phoneme.Seq(phoneme.PhonG, phoneme.PhonI)},
	{"グ", phoneme.Seq(phoneme.PhonG, phoneme.PhonU)},
	{"ゲ", phoneme.Seq(phoneme.PhonG, phoneme.PhonE)},
	{"ゴ", phoneme.Seq(phoneme.PhonG, phoneme.PhonO)},
	// サ行
	{"サ", phoneme.Seq(phoneme.PhonS, phoneme.PhonA)},
	{"シ", phoneme.Seq(phoneme.PhonSh, phoneme.PhonI)},
	{"ス", phoneme.Seq(phoneme.PhonS, phoneme.PhonU)},
	{"セ", phoneme.Seq(phoneme.PhonS, phoneme.PhonE)},
	{"ソ", phoneme.Seq(phoneme.PhonS, phoneme.PhonO)},
	// ザ行
	{"ザ", phoneme.Seq(phoneme.PhonZ, phoneme.PhonA)},
	{"ジ", phoneme.Seq(phoneme.PhonJ, phoneme.PhonI)},
	{"ズ", phoneme.Seq(phoneme.PhonZ, phoneme.PhonU)},
	{"ゼ", phoneme.Seq(phoneme.PhonZ, phoneme.PhonE)},
	{"ゾ", phoneme.Seq(phoneme.PhonZ, phoneme.PhonO)},
	// タ行
	{"タ", phoneme.Seq(phoneme.PhonT, phoneme.PhonA)},
	{"チ", phoneme.Seq(phoneme.PhonCh, phoneme.PhonI)},
	{"ツ", phoneme.Seq(phoneme.PhonTs, phoneme.PhonU)},
	{"テ", phoneme.Seq(phoneme.PhonT, phoneme.PhonE)},
	{"ト", phoneme.Seq(phoneme.PhonT, phoneme.PhonO)},
	// ダ行
	{"ダ", phoneme.Seq(phoneme.PhonD, phoneme.PhonA)},
	{"ヂ", phoneme.Seq(phoneme.PhonJ, phoneme.PhonI)},
	{"ヅ", phoneme.Seq(phoneme.PhonZ, phoneme.PhonU)},
	{"デ", phoneme.Seq(phoneme.PhonD, phoneme.PhonE)},
	{"ド", phoneme.Seq(phoneme.PhonD, phoneme.PhonO)},
	// ナ行
	{"ナ", phoneme.Seq(phoneme.PhonN, phoneme.PhonA)},
	{"ニ", phoneme.Seq(phoneme.PhonN, phoneme.PhonI)},
	{"ヌ", phoneme.Seq(phoneme.PhonN, phoneme.PhonU)},
	{"ネ", phoneme.Seq(phoneme.PhonN, phoneme.PhonE)},
	{"ノ", phoneme.Seq(phoneme.PhonN, phoneme.PhonO)},
	// ハ行
	{"ハ", phoneme.Seq(phoneme.PhonH, phoneme.PhonA)},
	{"ヒ", phoneme.Seq(phoneme.PhonH, phoneme.PhonI)},
	{"フ", phoneme.Seq(phoneme.PhonF, phoneme.PhonU)},
	{"ヘ", phoneme.Seq(phoneme.PhonH, phoneme.PhonE)},
	{"ホ", phoneme.Seq(phoneme.PhonH, phoneme.PhonO)},
	// バ行
	{"バ", phoneme.Seq(phoneme.PhonB, phoneme.PhonA)},
	{"ビ", phoneme.Seq(phoneme.PhonB, phoneme.PhonI)},
	{"ブ", phoneme.Seq(phoneme.PhonB, phoneme.PhonU)},
	{"ベ", phoneme.Seq(phoneme.PhonB, phoneme.PhonE)},
	{"ボ", phoneme.Seq(phoneme.PhonB, phoneme.PhonO)},
	// パ行
	{"パ", phoneme.Seq(phoneme.PhonP, phoneme.PhonA)},
	{"ピ", phoneme.Seq(phoneme.PhonP, phoneme.PhonI)},
	{"プ", phoneme.Seq(phoneme.PhonP, phoneme.PhonU)},
	{"ペ", phoneme.Seq(phoneme.PhonP, phoneme.PhonE)},
	{"ポ", phoneme.Seq(phoneme.PhonP, phoneme.PhonO)},
	// マ行
	{"マ", phoneme.Seq(phoneme.PhonM, phoneme.PhonA)},
	{"ミ", phoneme.Seq(phoneme.PhonM, phoneme.PhonI)},
	{"ム", phoneme.Seq(phoneme.PhonM, phoneme.PhonU)},
	{"メ", phoneme.Seq(phoneme.PhonM, phoneme.PhonE)},
	{"モ", phoneme.Seq(phoneme.PhonM, phoneme.PhonO)},
	// ヤ行
	{"ヤ", phoneme.Seq(phoneme.PhonY, phoneme.PhonA)},
	{"ユ", phoneme.Seq(phoneme.PhonY, phoneme.PhonU)},
	{"ヨ", phoneme.Seq(phoneme.PhonY, phoneme.PhonO)},
	// ラ行
	{"ラ", phoneme.Seq(phoneme.PhonR, phoneme.PhonA)},
	{"リ", phoneme.Seq(phoneme.PhonR, phoneme.PhonI)},
	{"ル", phoneme.Seq(phoneme.PhonR, phoneme.PhonU)},
	{"レ", phoneme.Seq(phoneme.PhonR, phoneme.PhonE)},
	{"ロ", phoneme.Seq(phoneme.PhonR, phoneme.PhonO)},
	// ワ行
	{"ワ", phoneme.Seq(phoneme.PhonW, phoneme.PhonA)},
	{"ヲ", phoneme.Seq(phoneme.PhonO)},
	// 小文字母音 (外来語フォールバック)
	{"ァ", phoneme.Seq(phoneme.PhonA)},
	{"ィ", phoneme.Seq(phoneme.PhonI)},
	{"ゥ", phoneme.Seq(phoneme.PhonU)},
	{"ェ", phoneme.Seq(phoneme.PhonE)},
	{"ォ", phoneme.Seq(phoneme.PhonO)},
	// 特殊
	{"ン", phoneme.Seq(phoneme.PhonNg)},
	{"ッ", phoneme.Seq(phoneme.PhonCl)},
	// ヴ (外来語)
	{"ヴ", phoneme.Seq(phoneme.PhonB, phoneme.PhonU)},
}

// kanaMap2 and kanaMap1 index two-rune and single-rune kana.
// Built at init time from kanaPhonemes.
var kanaMap2 map[string]phoneme.Sequence
var kanaMap1 map[string]phoneme.Sequence

func init() {
	kanaMap2 = make(map[string]phoneme.Sequence)
	kanaMap1 = make(map[string]phoneme.Sequence)
	for _, e := range kanaPhonemes {
		runes := []rune(e.kana)
		if len(runes) == 2 {
			kanaMap2[e.kana] = e.phonemes
		} else {
			kanaMap1[e.kana] = e.phonemes
		}
	}
}

// ToKatakana maps hiragana runes to their katakana counterparts and leaves
// every other rune untouched.
func ToKatakana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'ぁ' && r <= 'ゖ' {
			runes[i] = r + ('ァ' - 'ぁ')
		}
	}
	return string(runes)
}

// ToHiragana is the inverse of ToKatakana.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'ァ' && r <= 'ヶ' {
			runes[i] = r - ('ァ' - 'ぁ')
		}
	}
	return string(runes)
}

// KanaToPhonemes converts a hiragana or katakana string to a phoneme sequence.
// Unknown characters are silently skipped.
func KanaToPhonemes(kana string) phoneme.Sequence {
	seq, _ := convertKana(kana)
	return seq
}

// ParseKana is like KanaToPhonemes but reports false when kana holds a
// character missing from the kana table.
func ParseKana(kana string) (phoneme.Sequence, bool) {
	return convertKana(kana)
}

func convertKana(kana string) (phoneme.Sequence, bool) {
	runes := []rune(ToKatakana(kana))
	var result phoneme.Sequence
	known := true
	for i := 0; i < len(runes); {
		// Try 2-char match first (longest match)
		if i+1 < len(runes) {
			key := string(runes[i : i+2])
			if ph, ok := kanaMap2[key]; ok {
				result = append(result, ph...)
				i += 2
				continue
			}
		}
		// Single-char match
		key := string(runes[i : i+1])
		if ph, ok := kanaMap1[key]; ok {
			result = append(result, ph...)
		} else {
			known = false
		}
		i++
	}
	return result, known
}

// Refresh recomputes the phonemes of every kana lyric in d from the kana
// table. Lyrics that are not pure kana, or whose reading is longer than
// MaxPhonemes, keep their entry and are returned in skipped.
func (d *Dictionary) Refresh() (changed int, skipped []string) {
	for _, word := range d.Words() {
		seq, ok := ParseKana(word)
		if !ok || len(seq) == 0 || len(seq) > MaxPhonemes {
			skipped = append(skipped, word)
			continue
		}
		if !seq.Equal(d.Entries[word]) {
			d.Entries[word] = seq
			changed++
		}
	}
	return changed, skipped
}

// KanaDictionary builds a dictionary with one entry per kana mora in both
// katakana and hiragana spelling.
func KanaDictionary() *Dictionary {
	d := NewDictionary()
	for _, e := range kanaPhonemes {
		d.Add(e.kana, e.phonemes)
		if h := ToHiragana(e.kana); h != e.kana {
			d.Add(h, e.phonemes)
		}
	}
	return d
}
