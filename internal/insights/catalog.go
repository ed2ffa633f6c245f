package insights

import "github.com/pbaille/blueprint/internal/classifier"

// ZodiacProfile is the static content attached to a sign
type ZodiacProfile struct {
	LuckyStones     []string
	LuckyColors     []string
	CareerMatches   []string
	Strengths       []string
	Weaknesses      []string
	PartnerTraits   []string
	CompatibleSigns []string
}

// NumerologyProfile is the static content attached to a life path number
type NumerologyProfile struct {
	Careers    []string
	Strengths  []string
	Weaknesses []string
}

var zodiacProfiles = map[classifier.Sign]ZodiacProfile{
	classifier.Aries: {
		LuckyStones:     []string{"Diamond", "Bloodstone", "Ruby"},
		LuckyColors:     []string{"Red", "Scarlet", "Carmine"},
		CareerMatches:   []string{"Entrepreneur", "Military Officer", "Athlete", "Surgeon", "Sales Professional"},
		Strengths:       []string{"Leadership", "Courage", "Determination", "Confidence", "Enthusiasm"},
		Weaknesses:      []string{"Impatience", "Impulsiveness", "Aggression", "Short-tempered"},
		PartnerTraits:   []string{"Adventurous", "Independent", "Confident", "Passionate"},
		CompatibleSigns: []string{"Leo", "Sagittarius", "Gemini", "Aquarius"},
	},
	classifier.Taurus: {
		LuckyStones:     []string{"Emerald", "Sapphire", "Rose Quartz"},
		LuckyColors:     []string{"Green", "Pink", "Earth tones"},
		CareerMatches:   []string{"Banker", "Chef", "Architect", "Fashion Designer", "Agriculturist"},
		Strengths:       []string{"Reliability", "Patience", "Practicality", "Devotion", "Stability"},
		Weaknesses:      []string{"Stubbornness", "Possessiveness", "Materialism"},
		PartnerTraits:   []string{"Loyal", "Sensual", "Stable", "Patient"},
		CompatibleSigns: []string{"Virgo", "Capricorn", "Cancer", "Pisces"},
	},
	classifier.Gemini: {
		LuckyStones:     []string{"Agate", "Citrine", "Tiger's Eye"},
		LuckyColors:     []string{"Yellow", "Light Blue", "White"},
		CareerMatches:   []string{"Journalist", "Teacher", "Writer", "Public Relations", "Interpreter"},
		Strengths:       []string{"Adaptability", "Communication", "Wit", "Curiosity", "Versatility"},
		Weaknesses:      []string{"Inconsistency", "Indecisiveness", "Nervousness"},
		PartnerTraits:   []string{"Intellectual", "Communicative", "Spontaneous", "Fun-loving"},
		CompatibleSigns: []string{"Libra", "Aquarius", "Aries", "Leo"},
	},
	classifier.Cancer: {
		LuckyStones:     []string{"Moonstone", "Pearl", "Ruby"},
		LuckyColors:     []string{"White", "Silver", "Sea Green"},
		CareerMatches:   []string{"Nurse", "Interior Designer", "Chef", "Social Worker", "Historian"},
		Strengths:       []string{"Intuition", "Loyalty", "Emotional depth", "Compassion"},
		Weaknesses:      []string{"Moodiness", "Over-sensitivity", "Clinginess"},
		PartnerTraits:   []string{"Nurturing", "Emotional", "Protective", "Family-oriented"},
		CompatibleSigns: []string{"Scorpio", "Pisces", "Taurus", "Virgo"},
	},
	classifier.Leo: {
		LuckyStones:     []string{"Peridot", "Onyx", "Ruby"},
		LuckyColors:     []string{"Gold", "Orange", "Yellow"},
		CareerMatches:   []string{"CEO", "Actor", "Politician", "Event Manager", "Fashion Designer"},
		Strengths:       []string{"Confidence", "Creativity", "Generosity", "Leadership", "Warmth"},
		Weaknesses:      []string{"Arrogance", "Stubbornness", "Self-centeredness"},
		PartnerTraits:   []string{"Loyal", "Generous", "Confident", "Passionate"},
		CompatibleSigns: []string{"Aries", "Sagittarius", "Gemini", "Libra"},
	},
	classifier.Virgo: {
		LuckyStones:     []string{"Sapphire", "Jade", "Carnelian"},
		LuckyColors:     []string{"Navy Blue", "Grey", "Beige"},
		CareerMatches:   []string{"Editor", "Accountant", "Scientist", "Nutritionist", "Analyst"},
		Strengths:       []string{"Analytical", "Practical", "Diligence", "Reliability", "Precision"},
		Weaknesses:      []string{"Perfectionism", "Worry", "Over-critical"},
		PartnerTraits:   []string{"Practical", "Intelligent", "Supportive", "Loyal"},
		CompatibleSigns: []string{"Taurus", "Capricorn", "Cancer", "Scorpio"},
	},
	classifier.Libra: {
		LuckyStones:     []string{"Opal", "Lapis Lazuli", "Peridot"},
		LuckyColors:     []string{"Pink", "Blue", "Pastel shades"},
		CareerMatches:   []string{"Lawyer", "Diplomat", "Designer", "Counselor", "Art Curator"},
		Strengths:       []string{"Diplomacy", "Fairness", "Social skills", "Charm", "Balance"},
		Weaknesses:      []string{"Indecisiveness", "Avoidance of confrontation", "Self-pity"},
		PartnerTraits:   []string{"Balanced", "Charming", "Romantic", "Diplomatic"},
		CompatibleSigns: []string{"Gemini", "Aquarius", "Leo", "Sagittarius"},
	},
	classifier.Scorpio: {
		LuckyStones:     []string{"Topaz", "Obsidian", "Garnet"},
		LuckyColors:     []string{"Deep Red", "Black", "Maroon"},
		CareerMatches:   []string{"Detective", "Psychologist", "Researcher", "Surgeon", "Financial Advisor"},
		Strengths:       []string{"Passion", "Resourcefulness", "Bravery", "Determination", "Loyalty"},
		Weaknesses:      []string{"Jealousy", "Secretiveness", "Resentfulness"},
		PartnerTraits:   []string{"Intense", "Passionate", "Loyal", "Mysterious"},
		CompatibleSigns: []string{"Cancer", "Pisces", "Virgo", "Capricorn"},
	},
	classifier.Sagittarius: {
		LuckyStones:     []string{"Turquoise", "Topaz", "Amethyst"},
		LuckyColors:     []string{"Purple", "Blue", "Turquoise"},
		CareerMatches:   []string{"Travel Guide", "Philosopher", "Coach", "Professor", "Publisher"},
		Strengths:       []string{"Optimism", "Freedom-loving", "Honesty", "Enthusiasm", "Adventure"},
		Weaknesses:      []string{"Impatience", "Tactlessness", "Overconfidence"},
		PartnerTraits:   []string{"Adventurous", "Optimistic", "Independent", "Honest"},
		CompatibleSigns: []string{"Aries", "Leo", "Libra", "Aquarius"},
	},
	classifier.Capricorn: {
		LuckyStones:     []string{"Garnet", "Onyx", "Ruby"},
		LuckyColors:     []string{"Brown", "Black", "Dark Green"},
		CareerMatches:   []string{"Manager", "Architect", "Government Official", "Engineer", "Administrator"},
		Strengths:       []string{"Responsibility", "Discipline", "Self-control", "Ambition", "Wisdom"},
		Weaknesses:      []string{"Pessimism", "Stubbornness", "Unforgiving nature"},
		PartnerTraits:   []string{"Ambitious", "Responsible", "Patient", "Traditional"},
		CompatibleSigns: []string{"Taurus", "Virgo", "Scorpio", "Pisces"},
	},
	classifier.Aquarius: {
		LuckyStones:     []string{"Amethyst", "Aquamarine", "Garnet"},
		LuckyColors:     []string{"Electric Blue", "Silver", "Turquoise"},
		CareerMatches:   []string{"Inventor", "Social Worker", "Tech Innovator", "Environmentalist", "Astrologer"},
		Strengths:       []string{"Progressive", "Independent", "Humanitarian", "Original", "Intellectual"},
		Weaknesses:      []string{"Detachment", "Unpredictability", "Aloofness"},
		PartnerTraits:   []string{"Intellectual", "Independent", "Humanitarian", "Unconventional"},
		CompatibleSigns: []string{"Gemini", "Libra", "Aries", "Sagittarius"},
	},
	classifier.Pisces: {
		LuckyStones:     []string{"Aquamarine", "Moonstone", "Amethyst"},
		LuckyColors:     []string{"Sea Green", "Lavender", "Purple"},
		CareerMatches:   []string{"Artist", "Musician", "Therapist", "Photographer", "Spiritual Guide"},
		Strengths:       []string{"Compassion", "Intuition", "Creativity", "Empathy", "Wisdom"},
		Weaknesses:      []string{"Escapism", "Over-sensitivity", "Idealism"},
		PartnerTraits:   []string{"Romantic", "Compassionate", "Artistic", "Intuitive"},
		CompatibleSigns: []string{"Cancer", "Scorpio", "Taurus", "Capricorn"},
	},
}

var numerologyProfiles = map[int]NumerologyProfile{
	1: {
		Careers:    []string{"Leadership roles", "Entrepreneurship", "Innovation"},
		Strengths:  []string{"Independence", "Pioneer spirit", "Originality"},
		Weaknesses: []string{"Domineering", "Impatience", "Self-centeredness"},
	},
	2: {
		Careers:    []string{"Diplomacy", "Counseling", "Partnership roles"},
		Strengths:  []string{"Cooperation", "Sensitivity", "Peacemaking"},
		Weaknesses: []string{"Over-dependency", "Timidity", "Indecisiveness"},
	},
	3: {
		Careers:    []string{"Creative arts", "Communication", "Entertainment"},
		Strengths:  []string{"Creativity", "Expression", "Optimism"},
		Weaknesses: []string{"Scattered energy", "Superficiality", "Exaggeration"},
	},
	4: {
		Careers:    []string{"Building", "Organization", "Systems management"},
		Strengths:  []string{"Stability", "Hard work", "Practicality"},
		Weaknesses: []string{"Rigidity", "Narrow-mindedness", "Stubbornness"},
	},
	5: {
		Careers:    []string{"Travel", "Sales", "Public relations"},
		Strengths:  []string{"Versatility", "Freedom", "Adaptability"},
		Weaknesses: []string{"Restlessness", "Irresponsibility", "Inconsistency"},
	},
	6: {
		Careers:    []string{"Teaching", "Healing", "Community service"},
		Strengths:  []string{"Nurturing", "Responsibility", "Harmony"},
		Weaknesses: []string{"Worry", "Self-righteousness", "Meddling"},
	},
	7: {
		Careers:    []string{"Research", "Analysis", "Spiritual work"},
		Strengths:  []string{"Wisdom", "Introspection", "Intuition"},
		Weaknesses: []string{"Aloofness", "Skepticism", "Isolation"},
	},
	8: {
		Careers:    []string{"Business", "Finance", "Management"},
		Strengths:  []string{"Ambition", "Authority", "Material success"},
		Weaknesses: []string{"Materialism", "Control issues", "Workaholism"},
	},
	9: {
		Careers:    []string{"Humanitarian work", "Arts", "Global affairs"},
		Strengths:  []string{"Compassion", "Generosity", "Idealism"},
		Weaknesses: []string{"Emotional volatility", "Impracticality", "Martyrdom"},
	},
	11: {
		Careers:    []string{"Spiritual teaching", "Inspiration", "Counseling"},
		Strengths:  []string{"Intuition", "Idealism", "Inspiration"},
		Weaknesses: []string{"Nervousness", "Impracticality", "Fanaticism"},
	},
	22: {
		Careers:    []string{"Master building", "Large-scale projects", "Visionary leadership"},
		Strengths:  []string{"Master builder", "Practical idealism", "Power"},
		Weaknesses: []string{"Stress", "Inner tension", "Extremism"},
	},
	33: {
		Careers:    []string{"Master teaching", "Healing", "Selfless service"},
		Strengths:  []string{"Master teacher", "Healing", "Selfless service"},
		Weaknesses: []string{"Martyrdom", "Emotional burden", "Unrealistic expectations"},
	},
}

// Zodiac returns the profile for sign, or the Aries profile for an unknown sign
func Zodiac(sign classifier.Sign) ZodiacProfile {
	if p, ok := zodiacProfiles[sign]; ok {
		return p
	}
	return zodiacProfiles[classifier.Aries]
}

// Numerology returns the profile for n, or the profile for 1 for an unknown number
func Numerology(n int) NumerologyProfile {
	if p, ok := numerologyProfiles[n]; ok {
		return p
	}
	return numerologyProfiles[1]
}
