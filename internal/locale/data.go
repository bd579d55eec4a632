package locale

// Patterns are indexed by models.Style: none, short, medium, long, full.
// The none entry is always empty.
type stylePatterns [5]string

type definition struct {
	id       string
	date     stylePatterns
	time     stylePatterns
	glue     stylePatterns // date-time combination, chosen by the date style
	am, pm   string
	quarter  string // prefix for abbreviated quarters, e.g. "Q" in "Q1"
	eras     [2]string
	longEras [2]string
}

var westernEras = [2]string{"BC", "AD"}
var westernLongEras = [2]string{"Before Christ", "Anno Domini"}

var definitions = []definition{
	{
		id:       "en_US",
		date:     stylePatterns{"", "M/d/yy", "MMM d, y", "MMMM d, y", "EEEE, MMMM d, y"},
		time:     stylePatterns{"", "h:mm a", "h:mm:ss a", "h:mm:ss a z", "h:mm:ss a zzzz"},
		glue:     stylePatterns{"{1}, {0}", "{1}, {0}", "{1}, {0}", "{1} 'at' {0}", "{1} 'at' {0}"},
		am:       "AM",
		pm:       "PM",
		quarter:  "Q",
		eras:     westernEras,
		longEras: westernLongEras,
	},
	{
		id:       "en_GB",
		date:     stylePatterns{"", "dd/MM/y", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
		time:     stylePatterns{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		glue:     stylePatterns{"{1}, {0}", "{1}, {0}", "{1}, {0}", "{1} 'at' {0}", "{1} 'at' {0}"},
		am:       "am",
		pm:       "pm",
		quarter:  "Q",
		eras:     westernEras,
		longEras: westernLongEras,
	},
	{
		id:       "de_DE",
		date:     stylePatterns{"", "dd.MM.yy", "dd.MM.y", "d. MMMM y", "EEEE, d. MMMM y"},
		time:     stylePatterns{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		glue:     stylePatterns{"{1}, {0}", "{1}, {0}", "{1}, {0}", "{1} 'um' {0}", "{1} 'um' {0}"},
		am:       "AM",
		pm:       "PM",
		quarter:  "Q",
		eras:     [2]string{"v. Chr.", "n. Chr."},
		longEras: [2]string{"v. Chr.", "n. Chr."},
	},
	{
		id:       "fr_FR",
		date:     stylePatterns{"", "dd/MM/y", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
		time:     stylePatterns{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		glue:     stylePatterns{"{1} {0}", "{1} {0}", "{1} {0}", "{1} 'à' {0}", "{1} 'à' {0}"},
		am:       "AM",
		pm:       "PM",
		quarter:  "T",
		eras:     [2]string{"av. J.-C.", "ap. J.-C."},
		longEras: [2]string{"avant Jésus-Christ", "après Jésus-Christ"},
	},
	{
		id:       "es_ES",
		date:     stylePatterns{"", "d/M/yy", "d MMM y", "d 'de' MMMM 'de' y", "EEEE, d 'de' MMMM 'de' y"},
		time:     stylePatterns{"", "H:mm", "H:mm:ss", "H:mm:ss z", "H:mm:ss (zzzz)"},
		glue:     stylePatterns{"{1}, {0}", "{1}, {0}", "{1}, {0}", "{1}, {0}", "{1}, {0}"},
		am:       "a. m.",
		pm:       "p. m.",
		quarter:  "T",
		eras:     [2]string{"a. C.", "d. C."},
		longEras: [2]string{"antes de Cristo", "después de Cristo"},
	},
	{
		id:       "it_IT",
		date:     stylePatterns{"", "dd/MM/yy", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
		time:     stylePatterns{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		glue:     stylePatterns{"{1}, {0}", "{1}, {0}", "{1}, {0}", "{1} {0}", "{1} {0}"},
		am:       "AM",
		pm:       "PM",
		quarter:  "T",
		eras:     [2]string{"a.C.", "d.C."},
		longEras: [2]string{"avanti Cristo", "dopo Cristo"},
	},
	{
		id:       "pt_BR",
		date:     stylePatterns{"", "dd/MM/y", "d 'de' MMM 'de' y", "d 'de' MMMM 'de' y", "EEEE, d 'de' MMMM 'de' y"},
		time:     stylePatterns{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		glue:     stylePatterns{"{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
		am:       "AM",
		pm:       "PM",
		quarter:  "T",
		eras:     [2]string{"a.C.", "d.C."},
		longEras: [2]string{"antes de Cristo", "depois de Cristo"},
	},
	{
		id:       "pt_PT",
		date:     stylePatterns{"", "dd/MM/yy", "dd/MM/y", "d 'de' MMMM 'de' y", "EEEE, d 'de' MMMM 'de' y"},
		time:     stylePatterns{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		glue:     stylePatterns{"{1}, {0}", "{1}, {0}", "{1}, {0}", "{1} 'às' {0}", "{1} 'às' {0}"},
		am:       "a.m.",
		pm:       "p.m.",
		quarter:  "T",
		eras:     [2]string{"a.C.", "d.C."},
		longEras: [2]string{"antes de Cristo", "depois de Cristo"},
	},
	{
		id:       "nl_NL",
		date:     stylePatterns{"", "dd-MM-y", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
		time:     stylePatterns{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		glue:     stylePatterns{"{1} {0}", "{1} {0}", "{1} {0}", "{1} 'om' {0}", "{1} 'om' {0}"},
		am:       "a.m.",
		pm:       "p.m.",
		quarter:  "K",
		eras:     [2]string{"v.Chr.", "n.Chr."},
		longEras: [2]string{"voor Christus", "na Christus"},
	},
	{
		id:       "sv_SE",
		date:     stylePatterns{"", "y-MM-dd", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
		time:     stylePatterns{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		glue:     stylePatterns{"{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
		am:       "fm",
		pm:       "em",
		quarter:  "K",
		eras:     [2]string{"f.Kr.", "e.Kr."},
		longEras: [2]string{"före Kristus", "efter Kristus"},
	},
	{
		id:       "pl_PL",
		date:     stylePatterns{"", "d.MM.y", "d MMM y", "d MMMM y", "EEEE, d MMMM y"},
		time:     stylePatterns{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		glue:     stylePatterns{"{1}, {0}", "{1}, {0}", "{1}, {0}", "{1} {0}", "{1} {0}"},
		am:       "AM",
		pm:       "PM",
		quarter:  "I",
		eras:     [2]string{"p.n.e.", "n.e."},
		longEras: [2]string{"przed naszą erą", "naszej ery"},
	},
	{
		id:       "ru_RU",
		date:     stylePatterns{"", "dd.MM.y", "d MMM y 'г'.", "d MMMM y 'г'.", "EEEE, d MMMM y 'г'."},
		time:     stylePatterns{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		glue:     stylePatterns{"{1}, {0}", "{1}, {0}", "{1}, {0}", "{1}, {0}", "{1}, {0}"},
		am:       "AM",
		pm:       "PM",
		quarter:  "кв.",
		eras:     [2]string{"до н. э.", "н. э."},
		longEras: [2]string{"до Рождества Христова", "от Рождества Христова"},
	},
	{
		id:       "ja_JP",
		date:     stylePatterns{"", "y/MM/dd", "y/MM/dd", "y年M月d日", "y年M月d日EEEE"},
		time:     stylePatterns{"", "H:mm", "H:mm:ss", "H:mm:ss z", "H時mm分ss秒 zzzz"},
		glue:     stylePatterns{"{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
		am:       "午前",
		pm:       "午後",
		quarter:  "Q",
		eras:     [2]string{"紀元前", "西暦"},
		longEras: [2]string{"紀元前", "西暦"},
	},
	{
		id:       "zh_CN",
		date:     stylePatterns{"", "y/M/d", "y年M月d日", "y年M月d日", "y年M月d日EEEE"},
		time:     stylePatterns{"", "HH:mm", "HH:mm:ss", "z HH:mm:ss", "zzzz HH:mm:ss"},
		glue:     stylePatterns{"{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
		am:       "上午",
		pm:       "下午",
		quarter:  "Q",
		eras:     [2]string{"公元前", "公元"},
		longEras: [2]string{"公元前", "公元"},
	},
	{
		id:       "ko_KR",
		date:     stylePatterns{"", "yy. M. d.", "y. M. d.", "y년 M월 d일", "y년 M월 d일 EEEE"},
		time:     stylePatterns{"", "a h:mm", "a h:mm:ss", "a h시 m분 s초 z", "a h시 m분 s초 zzzz"},
		glue:     stylePatterns{"{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
		am:       "오전",
		pm:       "오후",
		quarter:  "Q",
		eras:     [2]string{"BC", "AD"},
		longEras: [2]string{"기원전", "서기"},
	},
}
