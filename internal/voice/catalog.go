// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package voice exposes the spokesperson voice catalog and an ElevenLabs
// text-to-speech client for generating audio previews.
package voice

// Voice is one selectable spokesperson voice. The catalog is curated by
// hand; IDs are ElevenLabs voice IDs. Each voice ships with a static
// pre-rendered sample under /audio/voices so the marketing page does not
// hit the TTS API.
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Gender      string `json:"gender"`
	Age         string `json:"age"`
	Tone        string `json:"tone"`
	PreviewText string `json:"previewText"`
	AudioURL    string `json:"audioUrl"`
}

// Catalog lists every voice offered for spokesperson selection.
var Catalog = []Voice{
	{
		ID:          "EXAVITQu4vr4xnSDxMaL",
		Name:        "Sarah",
		Description: "Warm & Professional",
		Gender:      "female",
		Age:         "30s",
		Tone:        "Friendly and approachable, perfect for coaching and wellness brands",
		PreviewText: "Hi, I'm Sarah, and I'm excited to be your AI spokesperson. I'll help you connect with your audience in a warm and professional way that builds trust and drives results.",
		AudioURL:    "/audio/voices/sarah.mp3",
	},
	{
		ID:          "21m00Tcm4TlvDq8ikWAM",
		Name:        "Rachel",
		Description: "Sophisticated & Elegant",
		Gender:      "female",
		Age:         "30s",
		Tone:        "Refined and elegant, ideal for luxury and high-end brands",
		PreviewText: "Good day, I'm Rachel. With a sophisticated and elegant tone, I bring a touch of refinement to your brand's message, perfect for luxury and high-end markets.",
		AudioURL:    "/audio/voices/rachel.mp3",
	},
	{
		ID:          "IKne3meq5aSn9XLyUdCD",
		Name:        "Charlie",
		Description: "Energetic & Youthful",
		Gender:      "male",
		Age:         "20s",
		Tone:        "Dynamic and energetic, great for fitness and tech brands",
		PreviewText: "Hey! I'm Charlie, ready to bring energy and excitement to your brand's message!",
		AudioURL:    "/audio/voices/charlie.mp3",
	},
	{
		ID:          "TX3LPaxmHKxFdv7VOQHJ",
		Name:        "Liam",
		Description: "Deep & Trustworthy",
		Gender:      "male",
		Age:         "40s",
		Tone:        "Deep and reassuring, perfect for finance and healthcare",
		PreviewText: "Hello, I'm Liam. I bring a sense of trust and reliability to every message I deliver.",
		AudioURL:    "/audio/voices/liam.mp3",
	},
	{
		ID:          "XB0fDUnXU5powFXDhCwa",
		Name:        "Charlotte",
		Description: "Sophisticated & Elegant",
		Gender:      "female",
		Age:         "40s",
		Tone:        "Refined and elegant, ideal for luxury and high-end brands",
		PreviewText: "Good day. I'm Charlotte, bringing sophistication and elegance to your brand communication.",
		AudioURL:    "/audio/voices/charlotte.mp3",
	},
	{
		ID:          "pFZP5JQG7iQjIQuC4Bku",
		Name:        "Lily",
		Description: "Warm & Conversational",
		Gender:      "female",
		Age:         "20s",
		Tone:        "Casual and relatable, perfect for social media content",
		PreviewText: "Hey! I'm Lily, and I'm all about keeping things real and relatable for your audience.",
		AudioURL:    "/audio/voices/lily.mp3",
	},
	{
		ID:          "TxGEqnHWrfWFTfGW9XjX",
		Name:        "Michael",
		Description: "Authoritative & Clear",
		Gender:      "male",
		Age:         "40s",
		Tone:        "Clear and authoritative, perfect for professional services and B2B",
		PreviewText: "Hi, I'm Michael. With a clear and authoritative voice, I'll deliver your message with confidence and credibility, perfect for professional services and B2B communications.",
		AudioURL:    "/audio/voices/michael.mp3",
	},
	{
		ID:          "pNInz6obpgDQGcFmaJgB",
		Name:        "David",
		Description: "Calm & Reassuring",
		Gender:      "male",
		Age:         "40s",
		Tone:        "Calm and reassuring, ideal for healthcare and education",
		PreviewText: "Hello, I'm David. With a calm and reassuring presence, I help your audience feel comfortable and informed, making complex topics easy to understand.",
		AudioURL:    "/audio/voices/david.mp3",
	},
	{
		ID:          "ErXwobaYiN019PkySvjV",
		Name:        "James",
		Description: "Motivating & Inspiring",
		Gender:      "male",
		Age:         "30s",
		Tone:        "Motivating and inspiring, great for coaching and personal development",
		PreviewText: "What's up! I'm James, and I'm here to motivate and inspire your audience to take action. Let's turn your message into a movement!",
		AudioURL:    "/audio/voices/james.mp3",
	},
	{
		ID:          "jsCqWAovK2LkecY7zXl4",
		Name:        "Olivia",
		Description: "Caring & Compassionate",
		Gender:      "female",
		Age:         "30s",
		Tone:        "Caring and compassionate, perfect for healthcare and non-profits",
		PreviewText: "Hello, I'm Olivia. My caring and compassionate voice creates a safe space for your audience, perfect for sensitive topics and healthcare communications.",
		AudioURL:    "/audio/voices/olivia.mp3",
	},
	{
		ID:          "onwK4e9ZLuTAKqWW03F9",
		Name:        "Alex",
		Description: "Modern & Tech-Savvy",
		Gender:      "male",
		Age:         "20s",
		Tone:        "Modern and tech-savvy, ideal for startups and innovation",
		PreviewText: "Hey, I'm Alex. With a modern and tech-savvy approach, I speak the language of innovation and help your cutting-edge brand connect with forward-thinking audiences.",
		AudioURL:    "/audio/voices/alex.mp3",
	},
	{
		ID:          "jBpfuIE2acCO8z3wKNLl",
		Name:        "Sophia",
		Description: "Natural & Authentic",
		Gender:      "female",
		Age:         "30s",
		Tone:        "Natural and authentic, perfect for sustainability and wellness",
		PreviewText: "Hi, I'm Sophia. My natural and authentic voice resonates with audiences who value genuine connections and sustainable living. Let's tell your story in a real way.",
		AudioURL:    "/audio/voices/sophia.mp3",
	},
	{
		ID:          "flq6f7yk4E4fJM5XTYuZ",
		Name:        "Marcus",
		Description: "Powerful & Commanding",
		Gender:      "male",
		Age:         "40s",
		Tone:        "Powerful and commanding, great for automotive and sports",
		PreviewText: "I'm Marcus, and I deliver your message with power and command. Perfect for industries that need a bold, strong voice that demands attention.",
		AudioURL:    "/audio/voices/marcus.mp3",
	},
	{
		ID:          "XrExE9yKIg1WjnnlVkGX",
		Name:        "Jessica",
		Description: "Friendly & Conversational",
		Gender:      "female",
		Age:         "30s",
		Tone:        "Friendly and conversational, ideal for hospitality and real estate",
		PreviewText: "Hi! I'm Jessica, and I love having real conversations with your audience. My friendly and approachable style makes everyone feel right at home.",
		AudioURL:    "/audio/voices/jessica.mp3",
	},
	{
		ID:          "iP95p4xoKVk53GoZ742B",
		Name:        "Chris",
		Description: "Versatile & Adaptable",
		Gender:      "male",
		Age:         "30s",
		Tone:        "Versatile and adaptable, perfect for tech and general business",
		PreviewText: "Hi, I'm Chris. My versatile voice adapts to any message or audience, making me perfect for tech companies and businesses that need flexibility.",
		AudioURL:    "/audio/voices/chris.mp3",
	},
	{
		ID:          "9BWtsMINqrJLrRacOk9x",
		Name:        "Emily",
		Description: "Energetic & Upbeat",
		Gender:      "female",
		Age:         "20s",
		Tone:        "Energetic and upbeat, great for fitness, retail, and events",
		PreviewText: "Hey there! I'm Emily, and I bring energy and enthusiasm to every message. Let's get your audience excited about what you have to offer!",
		AudioURL:    "/audio/voices/emily.mp3",
	},
}

// Find returns the catalog voice with the given ID, or nil if unknown.
func Find(id string) *Voice {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
