package dto

type GenerateMessageInput struct {
	ClientID        int    `json:"clientId" binding:"required,min=1"`
	Channel         string `json:"channel" binding:"required,oneof=email linkedin"`
	MessageType     string `json:"messageType" binding:"required,oneof=follow-up introduction proposal check-in"`
	Context         string `json:"context" binding:"required,min=1"`
	Tone            string `json:"tone" binding:"required,oneof=professional formal casual direct"`
	LastInteraction string `json:"lastInteraction"`
}

type GeneratedMessageDto struct {
	Subject     *string  `json:"subject,omitempty"`
	Content     string   `json:"content"`
	Tone        string   `json:"tone"`
	Suggestions []string `json:"suggestions"`
}

type OptimizeMessageInput struct {
	Content string `json:"content" binding:"required,min=1"`
	Channel string `json:"channel" binding:"required,oneof=email linkedin"`
	Tone    string `json:"tone"`
}

type OptimizedMessageDto struct {
	OptimizedContent string   `json:"optimizedContent"`
	Improvements     []string `json:"improvements"`
}
