package astro

// Star is a cataloged bright star, J2000 equatorial coordinates in degrees.
type Star struct {
	Name          string
	Constellation string
	RAdeg         float64
	DecDeg        float64
	Mag           float64 // apparent visual magnitude, lower is brighter
}

// Equatorial returns the star's position in engine coordinates (radians).
func (s Star) Equatorial() EquatorialCoord {
	return EquatorialCoord{RA: rad * s.RAdeg, Dec: rad * s.DecDeg}
}

// BrightStars returns the built-in catalog of naked-eye anchor stars used as
// the sky view background. Sourced from the Yale Bright Star Catalog and IAU
// star names, ordered brightest first.
func BrightStars() []Star {
	return brightStars
}

var brightStars = []Star{
	{"Sirius", "Canis Major", 101.287, -16.716, -1.46},
	{"Canopus", "Carina", 95.988, -52.696, -0.74},
	{"Arcturus", "Boötes", 213.915, 19.182, -0.05},
	{"Vega", "Lyra", 279.235, 38.784, 0.03},
	{"Capella", "Auriga", 79.172, 45.998, 0.08},
	{"Rigel", "Orion", 78.634, -8.202, 0.13},
	{"Procyon", "Canis Minor", 114.826, 5.225, 0.34},
	{"Achernar", "Eridanus", 24.429, -57.237, 0.46},
	{"Betelgeuse", "Orion", 88.793, 7.407, 0.50},
	{"Hadar", "Centaurus", 210.956, -60.373, 0.61},
	{"Altair", "Aquila", 297.696, 8.868, 0.76},
	{"Acrux", "Crux", 186.650, -63.099, 0.76},
	{"Aldebaran", "Taurus", 68.980, 16.509, 0.85},
	{"Antares", "Scorpius", 247.352, -26.432, 0.96},
	{"Spica", "Virgo", 201.298, -11.161, 0.97},
	{"Pollux", "Gemini", 116.329, 28.026, 1.14},
	{"Fomalhaut", "Piscis Austrinus", 344.413, -29.622, 1.16},
	{"Deneb", "Cygnus", 310.358, 45.280, 1.25},
	{"Mimosa", "Crux", 191.930, -59.689, 1.25},
	{"Regulus", "Leo", 152.093, 11.967, 1.35},
	{"Adhara", "Canis Major", 104.656, -28.972, 1.50},
	{"Castor", "Gemini", 113.650, 31.889, 1.58},
	{"Gacrux", "Crux", 187.791, -57.113, 1.63},
	{"Shaula", "Scorpius", 263.402, -37.104, 1.63},
	{"Bellatrix", "Orion", 81.283, 6.350, 1.64},
	{"Elnath", "Taurus", 81.573, 28.608, 1.65},
	{"Alnilam", "Orion", 84.053, -1.202, 1.69},
	{"Alnitak", "Orion", 85.190, -1.943, 1.77},
	{"Alioth", "Ursa Major", 193.507, 55.960, 1.77},
	{"Dubhe", "Ursa Major", 165.932, 61.751, 1.79},
	{"Mirfak", "Perseus", 51.081, 49.861, 1.79},
	{"Wezen", "Canis Major", 107.098, -26.393, 1.84},
	{"Kaus Australis", "Sagittarius", 276.043, -34.384, 1.85},
	{"Alkaid", "Ursa Major", 206.885, 49.313, 1.86},
	{"Menkalinan", "Auriga", 89.882, 44.948, 1.90},
	{"Alhena", "Gemini", 99.428, 16.399, 1.93},
	{"Peacock", "Pavo", 306.412, -56.735, 1.94},
	{"Mirzam", "Canis Major", 95.675, -17.956, 1.98},
	{"Alphard", "Hydra", 141.897, -8.659, 2.00},
	{"Hamal", "Aries", 31.793, 23.463, 2.00},
	{"Polaris", "Ursa Minor", 37.954, 89.264, 2.02},
	{"Diphda", "Cetus", 10.897, -17.987, 2.02},
	{"Nunki", "Sagittarius", 283.816, -26.297, 2.02},
	{"Mizar", "Ursa Major", 200.981, 54.925, 2.04},
	{"Alpheratz", "Andromeda", 2.097, 29.091, 2.06},
	{"Rasalhague", "Ophiuchus", 263.734, 12.560, 2.08},
	{"Kochab", "Ursa Minor", 222.676, 74.156, 2.08},
	{"Denebola", "Leo", 177.265, 14.572, 2.13},
	{"Alphecca", "Corona Borealis", 233.672, 26.715, 2.23},
	{"Mintaka", "Orion", 83.002, -0.299, 2.23},
	{"Sadr", "Cygnus", 305.557, 40.257, 2.23},
	{"Eltanin", "Draco", 269.152, 51.489, 2.23},
	{"Schedar", "Cassiopeia", 10.127, 56.537, 2.23},
	{"Caph", "Cassiopeia", 2.295, 59.150, 2.27},
	{"Dschubba", "Scorpius", 240.083, -22.622, 2.32},
	{"Merak", "Ursa Major", 165.460, 56.382, 2.37},
	{"Izar", "Boötes", 221.247, 27.074, 2.37},
	{"Enif", "Pegasus", 326.046, 9.875, 2.39},
	{"Ankaa", "Phoenix", 6.571, -42.306, 2.38},
	{"Phecda", "Ursa Major", 178.458, 53.695, 2.44},
	{"Scheat", "Pegasus", 345.944, 28.083, 2.42},
	{"Alderamin", "Cepheus", 319.645, 62.586, 2.51},
	{"Markab", "Pegasus", 346.190, 15.205, 2.49},
	{"Gienah", "Corvus", 183.952, -17.542, 2.59},
	{"Unukalhai", "Serpens", 236.067, 6.426, 2.65},
	{"Sheratan", "Aries", 28.660, 20.808, 2.64},
	{"Zosma", "Leo", 168.527, 20.524, 2.56},
	{"Arneb", "Lepus", 83.183, -17.822, 2.58},
	{"Rastaban", "Draco", 262.608, 52.301, 2.79},
	{"Cor Caroli", "Canes Venatici", 194.007, 38.318, 2.81},
	{"Vindemiatrix", "Virgo", 195.544, 10.959, 2.83},
	{"Porrima", "Virgo", 190.415, -1.449, 2.74},
	{"Alcyone", "Taurus", 56.871, 24.105, 2.87},
	{"Cursa", "Eridanus", 76.963, -5.086, 2.79},
	{"Albireo", "Cygnus", 292.680, 27.960, 3.18},
	{"Sadalmelik", "Aquarius", 331.446, -0.320, 2.96},
	{"Sadalsuud", "Aquarius", 322.890, -5.571, 2.91},
	{"Tarazed", "Aquila", 296.565, 10.613, 2.72},
	{"Nihal", "Lepus", 82.061, -20.759, 2.84},
	{"Megrez", "Ursa Major", 183.857, 57.033, 3.31},
	{"Chertan", "Leo", 168.560, 15.430, 3.33},
	{"Zavijava", "Virgo", 177.674, 1.765, 3.61},
}
