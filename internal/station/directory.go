// Package station provides the CRS code gazetteer and station name resolution.
package station

// Entry maps a lowercase station alias to its 3-letter CRS code.
// Multiple aliases may share a code ("kings cross" and "king's cross" -> KGX).
type Entry struct {
	Alias string
	Code  string
}

// directory is the built-in gazetteer of common UK stations. It is ordered:
// resolution results follow this order, so keep related aliases together with
// the most canonical form first. Loaded once, never mutated.
var directory = []Entry{
	// London terminals
	{"london kings cross", "KGX"}, {"kings cross", "KGX"}, {"king's cross", "KGX"},
	{"london paddington", "PAD"}, {"paddington", "PAD"},
	{"london euston", "EUS"}, {"euston", "EUS"},
	{"london waterloo", "WAT"}, {"waterloo", "WAT"},
	{"london victoria", "VIC"}, {"victoria", "VIC"},
	{"london liverpool street", "LST"}, {"liverpool street", "LST"},
	{"london bridge", "LBG"},
	{"london st pancras", "STP"}, {"st pancras", "STP"}, {"st pancras international", "STP"},
	{"london charing cross", "CHX"}, {"charing cross", "CHX"},
	{"london cannon street", "CST"}, {"cannon street", "CST"},
	{"london fenchurch street", "FST"}, {"fenchurch street", "FST"},
	{"london marylebone", "MYB"}, {"marylebone", "MYB"},
	// Major cities
	{"birmingham new street", "BHM"}, {"birmingham", "BHM"},
	{"manchester piccadilly", "MAN"}, {"manchester", "MAN"},
	{"edinburgh waverley", "EDB"}, {"edinburgh", "EDB"},
	{"glasgow central", "GLC"}, {"glasgow", "GLC"},
	{"leeds", "LDS"},
	{"bristol temple meads", "BRI"}, {"bristol", "BRI"},
	{"bath spa", "BTH"}, {"bath", "BTH"},
	{"reading", "RDG"},
	{"oxford", "OXF"},
	{"cambridge", "CBG"},
	{"york", "YRK"},
	{"newcastle", "NCL"},
	{"cardiff central", "CDF"}, {"cardiff", "CDF"},
	{"liverpool lime street", "LIV"}, {"liverpool", "LIV"},
	{"sheffield", "SHF"},
	{"nottingham", "NOT"},
	{"brighton", "BTN"},
	{"southampton central", "SOU"}, {"southampton", "SOU"},
	{"bournemouth", "BMH"},
	{"exeter st davids", "EXD"}, {"exeter", "EXD"},
	{"plymouth", "PLY"},
	{"penzance", "PNZ"},
	{"norwich", "NRW"},
	{"ipswich", "IPS"},
	{"peterborough", "PBO"},
	{"coventry", "COV"},
	{"milton keynes central", "MKC"}, {"milton keynes", "MKC"},
	{"swindon", "SWI"},
	{"gloucester", "GCR"},
	{"cheltenham spa", "CNM"}, {"cheltenham", "CNM"},
	{"worcester", "WOS"},
	{"newport", "NWP"},
	{"swansea", "SWA"},
	{"crewe", "CRE"},
	{"preston", "PRE"},
	{"lancaster", "LAN"},
	{"carlisle", "CAR"},
	{"darlington", "DAR"},
	{"durham", "DHM"},
	{"doncaster", "DON"},
	{"wakefield westgate", "WKF"}, {"wakefield", "WKF"},
	{"huddersfield", "HUD"},
	{"bradford", "BDI"},
	{"hull", "HUL"},
	{"scarborough", "SCA"},
	{"harrogate", "HGT"},
	{"stockport", "SPT"},
	{"warrington", "WBQ"},
	{"wigan", "WGN"},
	{"blackpool", "BPN"},
	{"southport", "SOP"},
	{"chester", "CTR"},
	{"shrewsbury", "SHR"},
	{"wolverhampton", "WVH"},
	{"stoke on trent", "SOT"}, {"stoke", "SOT"},
	{"derby", "DBY"},
	{"leicester", "LEI"},
	{"northampton", "NMP"},
	{"luton", "LUT"},
	{"st albans", "SAC"},
	{"watford junction", "WFJ"}, {"watford", "WFJ"},
	{"guildford", "GLD"},
	{"woking", "WOK"},
	{"basingstoke", "BSK"},
	{"winchester", "WIN"},
	{"portsmouth", "PMS"},
	{"chichester", "CCH"},
	{"worthing", "WRH"},
	{"eastbourne", "EBN"},
	{"hastings", "HGS"},
	{"tunbridge wells", "TBW"},
	{"maidstone", "MDE"},
	{"canterbury", "CBW"},
	{"dover", "DVP"},
	{"folkestone", "FKC"},
	{"ashford international", "AFK"}, {"ashford", "AFK"},
	{"sevenoaks", "SEV"},
	{"orpington", "ORP"},
	{"bromley south", "BMS"}, {"bromley", "BMS"},
	{"croydon", "ECR"},
	{"clapham junction", "CLJ"},
	{"wimbledon", "WIM"},
	{"richmond", "RMD"},
	{"ealing broadway", "EAL"}, {"ealing", "EAL"},
	{"slough", "SLO"},
	{"maidenhead", "MAI"},
	{"high wycombe", "HWY"},
	{"aylesbury", "AYS"},
	{"banbury", "BAN"},
	{"leamington spa", "LMS"}, {"leamington", "LMS"},
	{"stratford upon avon", "SAV"}, {"stratford-upon-avon", "SAV"},
	{"hereford", "HFD"},
	{"aberystwyth", "AYW"},
	{"llandudno", "LLD"},
	{"holyhead", "HHD"},
	{"inverness", "INV"},
	{"aberdeen", "ABD"},
	{"dundee", "DEE"},
	{"perth", "PTH"},
	{"stirling", "STG"},
	{"falkirk", "FKK"},
	{"motherwell", "MTH"},
	{"ayr", "AYR"},
	{"kilmarnock", "KMK"},
	{"dumfries", "DMF"},
	{"montpelier", "MTP"},
}

// Directory returns the full gazetteer in iteration order.
func Directory() []Entry {
	return directory
}
