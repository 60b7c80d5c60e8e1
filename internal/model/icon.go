package model

// Icon is one of the category icons the client knows how to draw. The
// identifier stored on the server is the icon's Name.
type Icon int

const (
	IconHelpCircle Icon = iota
	IconShoppingBag
	IconShoppingCart
	IconUtensils
	IconCoffee
	IconCar
	IconBus
	IconPlane
	IconHome
	IconZap
	IconWifi
	IconPhone
	IconPlayCircle
	IconMusic
	IconBook
	IconGraduationCap
	IconBriefcase
	IconDollarSign
	IconCreditCard
	IconPiggyBank
	IconGift
	IconHeart
	IconStethoscope
	IconPill
	IconDumbbell
	IconGamepad2
	IconShirt
	IconWatch
	IconScissors
	IconHammer
	IconWrench
	IconSmartphone
	IconLaptop
	IconCamera
	IconUmbrella
	IconSun
	IconMoon
	IconCloud
	IconTrash2
	IconAlertCircle
)

// IconFallback is used for empty or unknown stored identifiers.
const IconFallback = IconHelpCircle

type iconInfo struct {
	name  string
	glyph string
}

var iconTable = map[Icon]iconInfo{
	IconHelpCircle:    {"HelpCircle", "❔"},
	IconShoppingBag:   {"ShoppingBag", "🛍"},
	IconShoppingCart:  {"ShoppingCart", "🛒"},
	IconUtensils:      {"Utensils", "🍴"},
	IconCoffee:        {"Coffee", "☕"},
	IconCar:           {"Car", "🚗"},
	IconBus:           {"Bus", "🚌"},
	IconPlane:         {"Plane", "✈"},
	IconHome:          {"Home", "🏠"},
	IconZap:           {"Zap", "⚡"},
	IconWifi:          {"Wifi", "📶"},
	IconPhone:         {"Phone", "📞"},
	IconPlayCircle:    {"PlayCircle", "▶"},
	IconMusic:         {"Music", "🎵"},
	IconBook:          {"Book", "📖"},
	IconGraduationCap: {"GraduationCap", "🎓"},
	IconBriefcase:     {"Briefcase", "💼"},
	IconDollarSign:    {"DollarSign", "💲"},
	IconCreditCard:    {"CreditCard", "💳"},
	IconPiggyBank:     {"PiggyBank", "🐷"},
	IconGift:          {"Gift", "🎁"},
	IconHeart:         {"Heart", "❤"},
	IconStethoscope:   {"Stethoscope", "🩺"},
	IconPill:          {"Pill", "💊"},
	IconDumbbell:      {"Dumbbell", "🏋"},
	IconGamepad2:      {"Gamepad2", "🎮"},
	IconShirt:         {"Shirt", "👕"},
	IconWatch:         {"Watch", "⌚"},
	IconScissors:      {"Scissors", "✂"},
	IconHammer:        {"Hammer", "🔨"},
	IconWrench:        {"Wrench", "🔧"},
	IconSmartphone:    {"Smartphone", "📱"},
	IconLaptop:        {"Laptop", "💻"},
	IconCamera:        {"Camera", "📷"},
	IconUmbrella:      {"Umbrella", "☂"},
	IconSun:           {"Sun", "☀"},
	IconMoon:          {"Moon", "🌙"},
	IconCloud:         {"Cloud", "☁"},
	IconTrash2:        {"Trash2", "🗑"},
	IconAlertCircle:   {"AlertCircle", "❗"},
}

var iconsByName = func() map[string]Icon {
	m := make(map[string]Icon, len(iconTable))
	for icon, info := range iconTable {
		m[info.name] = icon
	}
	return m
}()

// Icons returns every supported icon in declaration order.
func Icons() []Icon {
	icons := make([]Icon, 0, len(iconTable))
	for i := IconHelpCircle; i <= IconAlertCircle; i++ {
		icons = append(icons, i)
	}
	return icons
}

// ParseIcon resolves a stored identifier. Anything unrecognized, including
// the empty string, maps to IconFallback.
func ParseIcon(name string) Icon {
	if icon, ok := iconsByName[name]; ok {
		return icon
	}
	return IconFallback
}

func (i Icon) Name() string {
	if info, ok := iconTable[i]; ok {
		return info.name
	}
	return iconTable[IconFallback].name
}

func (i Icon) Glyph() string {
	if info, ok := iconTable[i]; ok {
		return info.glyph
	}
	return iconTable[IconFallback].glyph
}

func (i Icon) String() string {
	return i.Name()
}
