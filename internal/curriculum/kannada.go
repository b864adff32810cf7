package curriculum

// Kannada returns the built-in Kannada curriculum: vowels followed by the
// five varga consonant groups and the remaining consonants.
func Kannada() *Curriculum {
	return build(kannadaGroups())
}

func kannadaGroups() []Group {
	return []Group{
		{
			Key:  "vowels",
			Name: "Vowels (ಸ್ವರಗಳು)",
			Letters: []Letter{
				{ID: "ಅ", Transliteration: "a", Pronunciation: "a", Examples: []string{"ಅಮ್ಮ (amma - mother)", "ಅಪ್ಪ (appa - father)"}},
				{ID: "ಆ", Transliteration: "aa", Pronunciation: "aa", Examples: []string{"ಆನೆ (aane - elephant)", "ಆಕಾಶ (aakaasha - sky)"}},
				{ID: "ಇ", Transliteration: "i", Pronunciation: "i", Examples: []string{"ಇಲಿ (ili - mouse)", "ಇಂದು (indu - today)"}},
				{ID: "ಈ", Transliteration: "ii", Pronunciation: "ee", Examples: []string{"ಈಗ (eega - now)", "ಈಶ (eesha - god)"}},
				{ID: "ಉ", Transliteration: "u", Pronunciation: "u", Examples: []string{"ಉಡುಪಿ (udupi - city name)", "ಉಪ್ಪು (uppu - salt)"}},
				{ID: "ಊ", Transliteration: "uu", Pronunciation: "oo", Examples: []string{"ಊಟ (oota - meal)", "ಊರು (ooru - town)"}},
				{ID: "ಋ", Transliteration: "ru", Pronunciation: "ru", Examples: []string{"ಋಷಿ (rushi - sage)", "ಋತು (rutu - season)"}},
				{ID: "ಎ", Transliteration: "e", Pronunciation: "e", Examples: []string{"ಎಲೆ (ele - leaf)", "ಎಮ್ಮೆ (emme - buffalo)"}},
				{ID: "ಏ", Transliteration: "ee", Pronunciation: "ae", Examples: []string{"ಏಣಿ (aeni - ladder)", "ಏನು (aenu - what)"}},
				{ID: "ಐ", Transliteration: "ai", Pronunciation: "ai", Examples: []string{"ಐದು (aidu - five)", "ಐನೂರು (ainooru - five hundred)"}},
				{ID: "ಒ", Transliteration: "o", Pronunciation: "o", Examples: []string{"ಒಂದು (ondu - one)", "ಒಳ್ಳೆಯದು (olleyadu - good)"}},
				{ID: "ಓ", Transliteration: "oo", Pronunciation: "o", Examples: []string{"ಓಡು (odu - run)", "ಓದು (odu - read)"}},
				{ID: "ಔ", Transliteration: "au", Pronunciation: "au", Examples: []string{"ಔಷಧಿ (aushadhi - medicine)", "ಔತಣ (autana - feast)"}},
			},
		},
		{
			Key:  "consonants_velar",
			Name: "Consonants - Velar (ಕ ವರ್ಗ)",
			Letters: []Letter{
				{ID: "ಕ", Transliteration: "ka", Examples: []string{"ಕಮಲ (kamala - lotus)"}},
				{ID: "ಖ", Transliteration: "kha", Examples: []string{"ಖಗ (khaga - bird)"}},
				{ID: "ಗ", Transliteration: "ga"},
				{ID: "ಘ", Transliteration: "gha"},
				{ID: "ಙ", Transliteration: "nga"},
			},
		},
		{
			Key:  "consonants_palatal",
			Name: "Consonants - Palatal (ಚ ವರ್ಗ)",
			Letters: []Letter{
				{ID: "ಚ", Transliteration: "cha"},
				{ID: "ಛ", Transliteration: "chha"},
				{ID: "ಜ", Transliteration: "ja"},
				{ID: "ಝ", Transliteration: "jha"},
				{ID: "ಞ", Transliteration: "nya"},
			},
		},
		{
			Key:  "consonants_retroflex",
			Name: "Consonants - Retroflex (ಟ ವರ್ಗ)",
			Letters: []Letter{
				{ID: "ಟ", Transliteration: "Ta"},
				{ID: "ಠ", Transliteration: "Tha"},
				{ID: "ಡ", Transliteration: "Da"},
				{ID: "ಢ", Transliteration: "Dha"},
				{ID: "ಣ", Transliteration: "Na"},
			},
		},
		{
			Key:  "consonants_dental",
			Name: "Consonants - Dental (ತ ವರ್ಗ)",
			Letters: []Letter{
				{ID: "ತ", Transliteration: "ta"},
				{ID: "ಥ", Transliteration: "tha"},
				{ID: "ದ", Transliteration: "da"},
				{ID: "ಧ", Transliteration: "dha"},
				{ID: "ನ", Transliteration: "na"},
			},
		},
		{
			Key:  "consonants_labial",
			Name: "Consonants - Labial (ಪ ವರ್ಗ)",
			Letters: []Letter{
				{ID: "ಪ", Transliteration: "pa"},
				{ID: "ಫ", Transliteration: "pha"},
				{ID: "ಬ", Transliteration: "ba"},
				{ID: "ಭ", Transliteration: "bha"},
				{ID: "ಮ", Transliteration: "ma"},
			},
		},
		{
			Key:  "consonants_other",
			Name: "Consonants - Other (ಅವರ್ಗೀಯ)",
			Letters: []Letter{
				{ID: "ಯ", Transliteration: "ya"},
				{ID: "ರ", Transliteration: "ra"},
				{ID: "ಲ", Transliteration: "la"},
				{ID: "ವ", Transliteration: "va"},
				{ID: "ಶ", Transliteration: "sha"},
				{ID: "ಷ", Transliteration: "Sha"},
				{ID: "ಸ", Transliteration: "sa"},
				{ID: "ಹ", Transliteration: "ha"},
				{ID: "ಳ", Transliteration: "La"},
			},
		},
	}
}
