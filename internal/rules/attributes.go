package rules

import "strings"

// Aspect is what a being is made of.
type Aspect string

const (
	Form   Aspect = "Form"
	Flesh  Aspect = "Flesh"
	Mind   Aspect = "Mind"
	Spirit Aspect = "Spirit"
)

// ParseAspect matches name against the Aspects, ignoring case.
func ParseAspect(name string) (Aspect, bool) {
	for _, a := range Aspects {
		if strings.EqualFold(string(a.ID), name) {
			return a.ID, true
		}
	}
	return "", false
}

// Function is what a being does.
type Function string

const (
	Resist   Function = "Resist"
	Adapt    Function = "Adapt"
	Perceive Function = "Perceive"
	Force    Function = "Force"
)

// ParseFunction matches name against the Functions, ignoring case.
func ParseFunction(name string) (Function, bool) {
	for _, f := range Functions {
		if strings.EqualFold(string(f.ID), name) {
			return f.ID, true
		}
	}
	return "", false
}

// Attribute is one Function applied to one Aspect.
type Attribute string

const (
	Toughness    Attribute = "Toughness"
	Endurance    Attribute = "Endurance"
	Willpower    Attribute = "Willpower"
	Resilience   Attribute = "Resilience"
	Agility      Attribute = "Agility"
	Reflexes     Attribute = "Reflexes"
	Intelligence Attribute = "Intelligence"
	Creativity   Attribute = "Creativity"
	Perception   Attribute = "Perception"
	Intuition    Attribute = "Intuition"
	Memory       Attribute = "Memory"
	Wisdom       Attribute = "Wisdom"
	Strength     Attribute = "Strength"
	Allure       Attribute = "Allure"
	Charisma     Attribute = "Charisma"
	Presence     Attribute = "Presence"
)

// AspectInfo describes an Aspect for display.
type AspectInfo struct {
	ID          Aspect
	Emoji       string
	Description string
}

// FunctionInfo describes a Function for display.
type FunctionInfo struct {
	ID          Function
	Emoji       string
	Description string
}

// AttributeInfo describes an Attribute and the pair it is derived from.
type AttributeInfo struct {
	ID          Attribute
	Function    Function
	Aspect      Aspect
	Abbr        string
	Description string
}

// Aspects in sheet column order.
var Aspects = []AspectInfo{
	{Form, "🧱", "The mechanical structure and shape of a thing, its solid physical framework in the world."},
	{Flesh, "🧬", "The living biological essence of a being, shaping how it endures, adapts, perceives and influences."},
	{Mind, "🧠", "The incorporeal realm of logic, reason and knowledge that governs formal magic and technology."},
	{Spirit, "🔥", "The incorporeal identity of the soul, the self-aware life force."},
}

// Functions in sheet row order.
var Functions = []FunctionInfo{
	{Resist, "🛡️", "The ability to withstand hardship, damage and pressure."},
	{Adapt, "🎯", "The capacity to move, change and respond with speed and precision."},
	{Perceive, "👁️", "The skill of sensing and understanding the world."},
	{Force, "💪", "The power to act upon and influence others."},
}

// Attributes lists all sixteen attributes, grouped by Function then Aspect.
var Attributes = []AttributeInfo{
	{Toughness, Resist, Form, "Tgh", "Resistance to physical harm or degradation"},
	{Endurance, Resist, Flesh, "End", "Biological stamina, fatigue resistance, healing"},
	{Willpower, Resist, Mind, "Wil", "Mental discipline, focus, and resistance to control"},
	{Resilience, Resist, Spirit, "Res", "Spiritual strength and emotional resilience"},

	{Agility, Adapt, Form, "Agi", "Mechanical movement, speed, and balance"},
	{Reflexes, Adapt, Flesh, "Rct", "Instinctive reaction, evasion, bodily coordination"},
	{Intelligence, Adapt, Mind, "Int", "Problem-solving, logic, processing speed"},
	{Creativity, Adapt, Spirit, "Cre", "Spontaneity, artistic improvisation, spiritual flow"},

	{Perception, Perceive, Form, "Per", "Accuracy of external physical senses"},
	{Intuition, Perceive, Flesh, "Itn", "Subconscious awareness of danger or emotional states"},
	{Memory, Perceive, Mind, "Mem", "Perception of mental constructs, learned experience and knowledge"},
	{Wisdom, Perceive, Spirit, "Wis", "Moral understanding, spiritual insight"},

	{Strength, Force, Form, "Str", "Capacity to exert physical power on the world"},
	{Allure, Force, Flesh, "All", "Physical attractiveness, magnetism, biological influence"},
	{Charisma, Force, Mind, "Cha", "Mental persuasion, rhetoric, leadership"},
	{Presence, Force, Spirit, "Pre", "Spiritual gravitas, emotional impact on others"},
}

var attributeIndex = func() map[Attribute]AttributeInfo {
	m := make(map[Attribute]AttributeInfo, len(Attributes))
	for _, a := range Attributes {
		m[a.ID] = a
	}
	return m
}()

// LookupAttribute returns the description of an attribute.
func LookupAttribute(id Attribute) (AttributeInfo, bool) {
	info, ok := attributeIndex[id]
	return info, ok
}

// AttributeFor returns the attribute formed by f applied to a.
func AttributeFor(f Function, a Aspect) Attribute {
	for _, attr := range Attributes {
		if attr.Function == f && attr.Aspect == a {
			return attr.ID
		}
	}
	return ""
}

// AspectRatings holds one rating per Aspect.
type AspectRatings struct {
	Form   int `json:"Form" yaml:"form"`
	Flesh  int `json:"Flesh" yaml:"flesh"`
	Mind   int `json:"Mind" yaml:"mind"`
	Spirit int `json:"Spirit" yaml:"spirit"`
}

// Get returns the rating for a.
func (r AspectRatings) Get(a Aspect) int {
	switch a {
	case Form:
		return r.Form
	case Flesh:
		return r.Flesh
	case Mind:
		return r.Mind
	case Spirit:
		return r.Spirit
	default:
		return 0
	}
}

// Total returns the sum of all four ratings.
func (r AspectRatings) Total() int {
	return r.Form + r.Flesh + r.Mind + r.Spirit
}

// Set stores v as the rating for a. It reports false for an unknown Aspect.
func (r *AspectRatings) Set(a Aspect, v int) bool {
	switch a {
	case Form:
		r.Form = v
	case Flesh:
		r.Flesh = v
	case Mind:
		r.Mind = v
	case Spirit:
		r.Spirit = v
	default:
		return false
	}
	return true
}

// FunctionRatings holds one rating per Function.
type FunctionRatings struct {
	Resist   int `json:"Resist" yaml:"resist"`
	Adapt    int `json:"Adapt" yaml:"adapt"`
	Perceive int `json:"Perceive" yaml:"perceive"`
	Force    int `json:"Force" yaml:"force"`
}

// Get returns the rating for f.
func (r FunctionRatings) Get(f Function) int {
	switch f {
	case Resist:
		return r.Resist
	case Adapt:
		return r.Adapt
	case Perceive:
		return r.Perceive
	case Force:
		return r.Force
	default:
		return 0
	}
}

// Total returns the sum of all four ratings.
func (r FunctionRatings) Total() int {
	return r.Resist + r.Adapt + r.Perceive + r.Force
}

// Set stores v as the rating for f. It reports false for an unknown Function.
func (r *FunctionRatings) Set(f Function, v int) bool {
	switch f {
	case Resist:
		r.Resist = v
	case Adapt:
		r.Adapt = v
	case Perceive:
		r.Perceive = v
	case Force:
		r.Force = v
	default:
		return false
	}
	return true
}
