package response

// Interactive reply payloads consumed by the messaging bot. The bot expects
// the provider's exact shape, so these bypass the standard envelope.

type ReplyButton struct {
	Type  string      `json:"type"`
	Reply ButtonReply `json:"reply"`
}

type ButtonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ButtonBody struct {
	Text string `json:"text"`
}

type ButtonAction struct {
	Buttons []ReplyButton `json:"buttons"`
}

type ReplyButtonPrompt struct {
	Type   string       `json:"type"`
	Body   ButtonBody   `json:"body"`
	Action ButtonAction `json:"action"`
}

type ButtonPrompt struct {
	SendReplyButton ReplyButtonPrompt `json:"send_reply_button"`
}

type ContinueSignal struct {
	Text string `json:"text"`
}

// NewButtonPrompt builds a button prompt from (id, title) pairs.
func NewButtonPrompt(text string, buttons ...ButtonReply) *ButtonPrompt {
	replies := make([]ReplyButton, len(buttons))
	for i, button := range buttons {
		replies[i] = ReplyButton{Type: "reply", Reply: button}
	}

	return &ButtonPrompt{
		SendReplyButton: ReplyButtonPrompt{
			Type:   "button",
			Body:   ButtonBody{Text: text},
			Action: ButtonAction{Buttons: replies},
		},
	}
}

// RegistrationPrompt asks an unknown user to register.
func RegistrationPrompt() *ButtonPrompt {
	return NewButtonPrompt(
		"Seems like you're not registered, please register",
		ButtonReply{ID: "register", Title: "Register"},
		ButtonReply{ID: "cancel", Title: "Cancel"},
	)
}

// VerifiedPrompt confirms a successful OTP verification.
func VerifiedPrompt() *ButtonPrompt {
	return NewButtonPrompt(
		"Your account is verified!",
		ButtonReply{ID: "filling_station", Title: "Continue"},
		ButtonReply{ID: "cancel", Title: "Cancel"},
	)
}
