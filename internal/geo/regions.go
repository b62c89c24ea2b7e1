package geo

// OtherChoice is the sentinel community offered when nothing in the reference
// dataset fits. It is always the last element of a community list.
const OtherChoice = "Other (Specify)"

// regionDistricts maps canonical Ghana region names to their districts.
var regionDistricts = map[string][]string{
	"Ashanti Region": {
		"Adansi Asokwa", "Adansi North", "Adansi South", "Afigya Kwabre North", "Afigya Kwabre South",
		"Asante Akim Central", "Asante Akim North", "Asante Akim South", "Atwima Kwanwoma", "Atwima Mponua",
		"Atwima Nwabiagya North", "Atwima Nwabiagya South", "Bekwai Municipal", "Bosome Freho", "Bosomtwe",
		"Ejisu Municipal", "Ejura Sekyedumase", "Kumasi Metropolitan", "Kwabre East", "Mampong Municipal",
		"Obuasi East", "Obuasi Municipal", "Offinso Municipal", "Offinso North", "Sekyere Afram Plains",
		"Sekyere Central", "Sekyere East", "Sekyere Kumawu", "Sekyere South", "Suame Municipal",
	},
	"Eastern Region": {
		"Abuakwa North", "Abuakwa South", "Akuapem North", "Akuapem South", "Akyemansa", "Asene Manso Akroso",
		"Atiwa East", "Atiwa West", "Ayensuano", "Birim Central", "Birim North", "Birim South", "Denkyembour",
		"Fanteakwa North", "Fanteakwa South", "Kwahu Afram Plains North", "Kwahu Afram Plains South",
		"Kwahu East", "Kwahu South", "Kwahu West Municipal", "Lower Manya Krobo", "New Juaben North Municipal",
		"New Juaben South Municipal", "Nsawam Adoagyiri Municipal", "Okere", "Suhum Municipal",
		"Upper Manya Krobo", "Upper West Akim", "West Akim", "Yilo Krobo Municipal",
	},
	"Volta Region": {
		"Adaklu", "Afadzato South", "Agotime Ziope", "Akatsi North", "Akatsi South", "Anloga", "Central Tongu",
		"Ho Municipal", "Ho West", "Hohoe Municipal", "Keta Municipal", "Ketu North Municipal", "Ketu South Municipal",
		"Krachi East", "Krachi Nchumuru", "Krachi West", "Nkwanta North", "Nkwanta South", "North Dayi",
		"North Tongu", "South Dayi", "South Tongu",
	},
	"Northern Region": {
		"Gushegu Municipal", "Karaga", "Kpandai", "Kumbungu", "Mion", "Nanton", "Nanumba North Municipal",
		"Nanumba South", "Saboba", "Sagnarigu Municipal", "Savelugu Municipal", "Tamale Metropolitan",
		"Tatale Sanguli", "Tolon", "Yendi Municipal", "Zabzugu",
	},
	"Central Region": {
		"Abura Asebu Kwamankese", "Agona East", "Agona West Municipal", "Ajumako Enyan Essiam",
		"Asikuma Odoben Brakwa", "Assin Central Municipal", "Assin North", "Awutu Senya East Municipal",
		"Awutu Senya West", "Cape Coast Metropolitan", "Effutu Municipal", "Ekumfi", "Gomoa Central",
		"Gomoa East", "Gomoa West", "Komenda Edina Eguafo Abirem Municipal", "Mfantseman Municipal",
		"Twifo Atti Morkwa", "Twifo Hemang Lower Denkyira", "Upper Denkyira East Municipal", "Upper Denkyira West",
	},
	"Western Region": {
		"Ahanta West", "Amenfi Central", "Amenfi East Municipal", "Amenfi West", "Effia Kwesimintsim Municipal",
		"Ellembelle", "Jomoro", "Mpohor", "Nzema East Municipal", "Prestea Huni Valley Municipal",
		"Sekondi-Takoradi Metropolitan", "Shama", "Tarkwa Nsuaem Municipal", "Wassa Amenfi North Municipal",
		"Wassa Amenfi South", "Wassa East",
	},
	"Bono Region": {
		"Banda", "Berekum East Municipal", "Berekum West", "Dormaa Central Municipal", "Dormaa East",
		"Dormaa West", "Jaman North", "Jaman South Municipal", "Sunyani Municipal", "Sunyani West",
		"Tain", "Wenchi Municipal",
	},
}

// regionLanguages maps region names to the languages commonly spoken there.
var regionLanguages = map[string][]string{
	"Ashanti Region":  {"Twi", "English", "Hausa"},
	"Eastern Region":  {"Twi", "Krobo", "English", "Ewe", "Hausa"},
	"Volta Region":    {"Ewe", "English", "Twi"},
	"Northern Region": {"Dagbani", "English", "Hausa", "Twi"},
	"Central Region":  {"Fante", "Twi", "English"},
	"Western Region":  {"Fante", "Nzema", "Wassa", "English", "Twi"},
	"Bono Region":     {"Bono", "Twi", "English"},
	"Greater Accra":   {"Ga", "Twi", "English", "Ewe", "Dangme"},
	"Upper East":      {"Gurune (Frafra)", "Kusaal", "English", "Hausa"},
	"Upper West":      {"Dagaare", "Waala", "English", "Hausa"},
	"Western North":   {"Sefwi", "English", "Twi"},
	"Ahafo":           {"Bono", "Twi", "English"},
	"Bono East":       {"Bono", "Twi", "English"},
	"Oti":             {"Ewe", "Adele", "Nchumuru", "English"},
	"Savannah":        {"Gonja", "English", "Twi"},
	"North East":      {"Mamprusi", "English", "Hausa"},
}

// districtCommunities maps districts to their known communities. Coverage is
// partial; districts without an entry contribute nothing to a lookup.
var districtCommunities = map[string][]string{
	// Ashanti Region
	"Adansi Asokwa":          {"Adansi Asokwa", "Bodwesango", "Fumso", OtherChoice},
	"Adansi North":           {"Fomena", "Dompoase", "Akrokerri", OtherChoice},
	"Adansi South":           {"New Edubiase", "Anhwiaso", "Kusa", OtherChoice},
	"Afigya Kwabre North":    {"Boamang", "Afrancho", "Barekese", OtherChoice},
	"Afigya Kwabre South":    {"Kodie", "Nsuta", "Atimatim", OtherChoice},
	"Asante Akim Central":    {"Konongo", "Odumase", "Juaso", OtherChoice},
	"Asante Akim North":      {"Agogo", "Hwidiem", "Nyinatokrom", OtherChoice},
	"Asante Akim South":      {"Juaben", "Bompata", "Ahyiayem", OtherChoice},
	"Atwima Kwanwoma":        {"Foase", "Abira", "Adanwomase", OtherChoice},
	"Atwima Mponua":          {"Nyinahin", "Tano Odumase", "Abuakwa", OtherChoice},
	"Atwima Nwabiagya North": {"Barekese", "Abuakwa", "Asuofua", OtherChoice},
	"Atwima Nwabiagya South": {"Nkawie", "Toase", "Mpasatia", OtherChoice},
	"Bekwai Municipal":       {"Bekwai", "Anwiankwanta", "Amoafo", OtherChoice},
	"Bosome Freho":           {"Asiwa", "Freho", "Nsuta", OtherChoice},
	"Bosomtwe":               {"Kuntanase", "Abono", "Jachie", OtherChoice},
	"Ejisu Municipal":        {"Ejisu", "Besease", "Fumesua", OtherChoice},
	"Ejura Sekyedumase":      {"Ejura", "Sekyedumase", "Hiawoanwu", "Babaso", OtherChoice},
	"Kumasi Metropolitan":    {"Asokwa", "Suame", "Bantama", "Tafo", OtherChoice},
	"Kwabre East":            {"Mamponteng", "Asonomaso", "Antoa", OtherChoice},
	"Mampong Municipal":      {"Mampong", "Kyeremfaso", "Krobo", OtherChoice},
	"Obuasi Municipal":       {"Obuasi", "Anyinam", "Sanso", OtherChoice},
	"Offinso Municipal":      {"Offinso", "Akomadan", "Afrancho", OtherChoice},
	"Offinso North":          {"Akomadan", "Afrancho", "Nkenkaasu", OtherChoice},
	"Sekyere Afram Plains":   {"Drobonso", "Kumawu", "Anyinasu", OtherChoice},
	"Sekyere Central":        {"Nsuta", "Kona", "Beposo", OtherChoice},
	"Sekyere East":           {"Effiduase", "Asokore", "Aboaso", OtherChoice},
	"Sekyere Kumawu":         {"Kumawu", "Besoro", "Woraso", OtherChoice},
	"Sekyere South":          {"Agona", "Wiamoase", "Jamasi", OtherChoice},
	"Suame Municipal":        {"Suame", "Maakro", "Aboabo", OtherChoice},

	// Eastern Region
	"Abuakwa North":            {"Kukurantumi", "Kyebi", "Osiem", OtherChoice},
	"Abuakwa South":            {"Kyebi", "Apedwa", "Akwadum", OtherChoice},
	"Akuapem North":            {"Akropong", "Mampong", "Aburi", OtherChoice},
	"Akuapem South":            {"Nsawam", "Dodowa", "Ayikuma", OtherChoice},
	"Suhum Municipal":          {"Suhum", "Nankese", "Akyem Asuboa", OtherChoice},
	"New Juaben North":         {"Koforidua", "Effiduase", "Jumapo", OtherChoice},
	"New Juaben South":         {"Koforidua", "Oyoko", "Adweso", OtherChoice},
	"Kwahu Afram Plains North": {"Donkorkrom", "Tease", "Adawso", OtherChoice},
	"Kwahu Afram Plains South": {"Tease", "Maame Krobo", "Kwahu Tafo", OtherChoice},

	// Volta Region
	"Ho Municipal":         {"Ho", "Sokode", "Abutia", OtherChoice},
	"Hohoe Municipal":      {"Hohoe", "Alavanyo", "Likpe", OtherChoice},
	"Ketu North Municipal": {"Dzodze", "Penyi", "Aflao-Tornu", OtherChoice},
	"Ketu South Municipal": {"Aflao", "Klikor", "Some", OtherChoice},

	// Northern Region
	"Tamale Metropolitan": {"Tamale", "Jisonayili", "Vittin", OtherChoice},
	"Savelugu Municipal":  {"Savelugu", "Pong-Tamale", "Diare", OtherChoice},
	"Yendi Municipal":     {"Yendi", "Gbungbaliga", "Malzeri", OtherChoice},

	// Central Region
	"Abura Asebu Kwamankese":                {"Abura Dunkwa", "Abakrampa", "Asebu", "Kwamankese", OtherChoice},
	"Agona East":                            {"Nsaba", "Duakwa", "Abodom", OtherChoice},
	"Agona West Municipal":                  {"Agona Swedru", "Nyakrom", "Bobikuma", OtherChoice},
	"Ajumako Enyan Essiam":                  {"Ajumako", "Enyan Denkyira", "Essiam", OtherChoice},
	"Asikuma Odoben Brakwa":                 {"Breman Asikuma", "Odoben", "Brakwa", OtherChoice},
	"Assin Central Municipal":               {"Assin Fosu", "Assin Bereku", "Assin Nyankomasi", OtherChoice},
	"Assin North":                           {"Assin Praso", "Assin Akropong", "Assin Dansame", OtherChoice},
	"Awutu Senya East Municipal":            {"Kasoa", "Ofankor", "Oduponkpehe", OtherChoice},
	"Awutu Senya West":                      {"Bawjiase", "Bontrase", "Senya Beraku", OtherChoice},
	"Cape Coast Metropolitan":               {"Cape Coast", "Abura", "Pedu", OtherChoice},
	"Effutu Municipal":                      {"Winneba", "Gyangyanadze", "New Winneba", OtherChoice},
	"Ekumfi":                                {"Ekumfi Essarkyir", "Ekumfi Akwakrom", "Ekumfi Otuam", OtherChoice},
	"Gomoa Central":                         {"Gomoa Afransi", "Gomoa Tarkwa", "Gomoa Nyanyano", OtherChoice},
	"Gomoa East":                            {"Gomoa Buduburam", "Gomoa Fetteh", "Ojobi", OtherChoice},
	"Gomoa West":                            {"Apam", "Mumford", "Gomoa Onyadze", OtherChoice},
	"Komenda Edina Eguafo Abirem Municipal": {"Elmina", "Komenda", "Eguafo", OtherChoice},
	"Mfantseman Municipal":                  {"Saltpond", "Anomabo", "Mankessim", OtherChoice},
	"Twifo Atti Morkwa":                     {"Twifo Praso", "Atti Morkwa", "Hemang", OtherChoice},
	"Twifo Hemang Lower Denkyira":           {"Hemang", "Jukwa", "Mfuom", OtherChoice},
	"Upper Denkyira East Municipal":         {"Dunkwa-on-Offin", "Ayanfuri", "Diaso", OtherChoice},
	"Upper Denkyira West":                   {"Diaso", "Subinso", "Ntom", OtherChoice},

	// Western Region
	"Ahanta West":                    {"Agona Nkwanta", "Busua", "Dixcove", OtherChoice},
	"Amenfi Central":                 {"Wassa Akropong", "Manso Amenfi", "Kwamang", OtherChoice},
	"Amenfi East Municipal":          {"Wassa Akropong", "Asankrangwa", "Dominase", OtherChoice},
	"Amenfi West":                    {"Asankrangwa", "Samreboi", "Wassa Dunkwa", OtherChoice},
	"Effia Kwesimintsim Municipal":   {"Kwesimintsim", "Effia", "Anaji", OtherChoice},
	"Ellembelle":                     {"Nkroful", "Esiama", "Teleku Bokazo", OtherChoice},
	"Jomoro":                         {"Half Assini", "Elubo", "Tikobo No.1", OtherChoice},
	"Mpohor":                         {"Mpohor", "Akwidae", "Subri", OtherChoice},
	"Nzema East Municipal":           {"Axim", "Asanta", "Agyambra", OtherChoice},
	"Prestea Huni Valley Municipal":  {"Prestea", "Huni Valley", "Bogoso", OtherChoice},
	"Sekondi-Takoradi Metropolitan":  {"Sekondi", "Takoradi", "New Takoradi", OtherChoice},
	"Shama":                          {"Shama", "Abuesi", "Inchaban", OtherChoice},
	"Tarkwa Nsuaem Municipal":        {"Tarkwa", "Nsuaem", "Tamso", OtherChoice},
	"Wassa Amenfi North Municipal":   {"Asankrangwa", "Samreboi", "Kramokrom", OtherChoice},
	"Wassa Amenfi South":             {"Agona Amenfi", "Manso Amenfi", "Kwamang", OtherChoice},
	"Wassa East":                     {"Daboase", "Dompim", "Aboi", OtherChoice},

	// Bono Region
	"Banda":                   {"Banda Ahenkro", "Banda Nkwanta", "Bui", OtherChoice},
	"Berekum East Municipal":  {"Berekum", "Senase", "Jamdede", OtherChoice},
	"Berekum West":            {"Jinijini", "Fetentaa", "Kato", OtherChoice},
	"Dormaa Central Municipal": {"Dormaa Ahenkro", "Wamfie", "Kyeremasu", OtherChoice},
	"Dormaa East":             {"Wamfie", "Asuotiano", "Amasu", OtherChoice},
	"Dormaa West":             {"Nkrankwanta", "Diabaa", "Kwakuanya", OtherChoice},
	"Jaman North":             {"Sampa", "Goka", "Duadaso", OtherChoice},
	"Jaman South Municipal":   {"Drobo", "Japekrom", "Adamsu", OtherChoice},
	"Sunyani Municipal":       {"Sunyani", "Abesim", "New Dormaa", OtherChoice},
	"Sunyani West":            {"Odumase", "Chiraa", "Fiapre", OtherChoice},
	"Tain":                    {"Nsawkaw", "Debibi", "Seikwa", OtherChoice},
	"Wenchi Municipal":        {"Wenchi", "Subinso", "Tromeso", OtherChoice},
}
