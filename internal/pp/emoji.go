package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the service name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars    Emoji = "📖" // reading configuration
	EmojiConfig     Emoji = "🔧" // showing configuration
	EmojiPrivileges Emoji = "🥷" // dropping privileges
	EmojiMute       Emoji = "🔇" // quiet mode
	EmojiDisabled   Emoji = "🚫" // disabled features

	EmojiListen    Emoji = "📡" // the listening socket
	EmojiRequest   Emoji = "🐦" // inbound request lines
	EmojiRepeat    Emoji = "♻️" // cached translations being reused
	EmojiSchedule  Emoji = "⏰" // successfully translated schedules
	EmojiTruncated Emoji = "✂️" // oversized requests being cut short

	EmojiPing         Emoji = "🔔" // pinging and health checks
	EmojiNotification Emoji = "📨" // notifications

	EmojiSignal Emoji = "🚨" // catching signals
	EmojiBye    Emoji = "👋" // bye!

	EmojiGood        Emoji = "😊" // good news
	EmojiUserError   Emoji = "😡" // mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible user mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiWarning     Emoji = "😐" // warnings about something unusual
	EmojiImpossible  Emoji = "🤯" // the impossible happened
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
