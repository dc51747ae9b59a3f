package geo

import "sync"

var caAreaCodes = []string{
	"204", "226", "236", "249", "250", "263", "289", "306", "343", "354",
	"365", "367", "368", "382", "387", "403", "416", "418", "428", "431",
	"437", "438", "450", "468", "474", "506", "514", "519", "548", "579",
	"581", "584", "587", "604", "613", "639", "647", "672", "683", "705",
	"709", "742", "753", "778", "780", "782", "807", "819", "825", "867",
	"873", "879", "902", "905",
}

// builtin is the reference table shipped with the package. Formats cover
// the national significant number only.
var builtin = []Country{
	{ISO2: "AE", Name: "United Arab Emirates", DialCode: "971", Format: ". ... ...."},
	{ISO2: "AR", Name: "Argentina", DialCode: "54", Format: "(..) ........"},
	{ISO2: "AT", Name: "Austria", DialCode: "43"},
	{ISO2: "AU", Name: "Australia", DialCode: "61", Format: "(..) .... ...."},
	{ISO2: "BE", Name: "Belgium", DialCode: "32", Format: "... .. .. .."},
	{ISO2: "BR", Name: "Brazil", DialCode: "55", Format: "(..) ........."},
	{ISO2: "BS", Name: "Bahamas", DialCode: "1242", Format: "...-...."},
	{ISO2: "BY", Name: "Belarus", DialCode: "375", Format: "(..) ... .. .."},
	{ISO2: "CA", Name: "Canada", DialCode: "1", Format: "(...) ...-....", Priority: 1, AreaCodes: caAreaCodes},
	{ISO2: "CH", Name: "Switzerland", DialCode: "41", Format: ".. ... .. .."},
	{ISO2: "CN", Name: "China", DialCode: "86", Format: "..-........."},
	{ISO2: "DE", Name: "Germany", DialCode: "49", Format: "... ........."},
	{ISO2: "DK", Name: "Denmark", DialCode: "45", Format: ".. .. .. .."},
	{ISO2: "EG", Name: "Egypt", DialCode: "20"},
	{ISO2: "ES", Name: "Spain", DialCode: "34", Format: "... ... ..."},
	{ISO2: "FI", Name: "Finland", DialCode: "358", Format: ".. ... .. .."},
	{ISO2: "FR", Name: "France", DialCode: "33", Format: ". .. .. .. .."},
	{ISO2: "GB", Name: "United Kingdom", DialCode: "44", Format: ".... ......"},
	{ISO2: "GR", Name: "Greece", DialCode: "30"},
	{ISO2: "HK", Name: "Hong Kong", DialCode: "852", Format: ".... ...."},
	{ISO2: "IE", Name: "Ireland", DialCode: "353", Format: ".. ......."},
	{ISO2: "IL", Name: "Israel", DialCode: "972", Format: "... ... ...."},
	{ISO2: "IN", Name: "India", DialCode: "91", Format: ".....-....."},
	{ISO2: "IT", Name: "Italy", DialCode: "39", Format: "... ......."},
	{ISO2: "JM", Name: "Jamaica", DialCode: "1876", Format: "...-...."},
	{ISO2: "JP", Name: "Japan", DialCode: "81", Format: ".. .... ...."},
	{ISO2: "KR", Name: "South Korea", DialCode: "82", Format: "... .... ...."},
	{ISO2: "KZ", Name: "Kazakhstan", DialCode: "7", Format: "(...) ...-..-..", Priority: 1, AreaCodes: []string{"33", "7"}},
	{ISO2: "MR", Name: "Mauritania", DialCode: "222", Format: ".. .. .. .."},
	{ISO2: "MX", Name: "Mexico", DialCode: "52", Format: "... ... ...."},
	{ISO2: "NG", Name: "Nigeria", DialCode: "234"},
	{ISO2: "NL", Name: "Netherlands", DialCode: "31", Format: ". ........"},
	{ISO2: "NO", Name: "Norway", DialCode: "47", Format: "... .. ..."},
	{ISO2: "NZ", Name: "New Zealand", DialCode: "64", Format: "...-...-...."},
	{ISO2: "PL", Name: "Poland", DialCode: "48", Format: "...-...-..."},
	{ISO2: "PT", Name: "Portugal", DialCode: "351"},
	{ISO2: "RU", Name: "Russia", DialCode: "7", Format: "(...) ...-..-.."},
	{ISO2: "SA", Name: "Saudi Arabia", DialCode: "966"},
	{ISO2: "SE", Name: "Sweden", DialCode: "46", Format: "(...) ...-..."},
	{ISO2: "SG", Name: "Singapore", DialCode: "65", Format: "....-...."},
	{ISO2: "TR", Name: "Turkey", DialCode: "90", Format: "... ... .. .."},
	{ISO2: "UA", Name: "Ukraine", DialCode: "380", Format: "(..) ... .. .."},
	{ISO2: "US", Name: "United States", DialCode: "1", Format: "(...) ...-...."},
	{ISO2: "ZA", Name: "South Africa", DialCode: "27"},
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in reference table. The table is built once
// and shared.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = MustTable(builtin)
	})
	return defaultTable
}
