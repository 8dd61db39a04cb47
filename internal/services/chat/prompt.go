package chat

// SystemPrompt keeps the assistant to plain-language explanations and away from medical advice
const SystemPrompt = "You are a friendly AI assistant that explains brain tumors and treatments " +
	"in simple terms. Do not give medical advice; encourage seeing a doctor."

const (
	MaxReplyTokens = 350
	Temperature    = 0.7
)
