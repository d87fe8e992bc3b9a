package ai

import (
	"context"
	"encoding/json"
	"fmt"
)

// mockProvider returns deterministic, well-formed payloads without calling
// any external API. It keeps local development and demos working when no
// LLM key is configured. The payload shape follows the system prompt that
// requested it.
type mockProvider struct{}

func newMock() *mockProvider { return &mockProvider{} }

func (p *mockProvider) Name() string { return "mock" }

func (p *mockProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	switch systemPrompt {
	case emailSystemPrompt:
		return marshalMock(mockEmailSequence())
	case adSystemPrompt:
		return marshalMock(mockAds())
	}

	pack := PackResponse{
		FAQs:         mockScripts("FAQ Script", "Hey there! One question I get asked all the time is about [topic %d]. Here's the deal... [explanation]. If you have more questions, drop them in the comments or reach out directly!", 8),
		Services:     mockScripts("Service Explainer", "Let me tell you about one of our most popular services... [Service %d]. What makes it special is [benefit]. Our clients love it because [result]. Want to learn more? Link in bio!", 8),
		Promos:       mockScripts("Special Offer", "I've got some exciting news! For a limited time, we're offering [promo %d]. This is perfect if you've been thinking about [benefit]. Don't wait - this offer won't last forever!", 4),
		Testimonials: mockScripts("Success Story", "I wanted to share an amazing result from one of our clients. They came to us with [problem] and within [timeframe], they achieved [result %d]. Stories like this are why I love what I do!", 4),
		Tips:         mockScripts("Pro Tip", "Here's a quick tip that most people don't know... [Tip %d]. This simple change can make a huge difference in [area]. Try it and let me know how it works for you!", 4),
		Brand:        mockScripts("About Us", "I've been in this industry for [years] and there's one thing I've learned... [insight %d]. That's why I built this business - to help people like you achieve [goal]. Let's connect!", 2),
	}

	return marshalMock(pack)
}

func marshalMock(v any) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("mock marshal: %w", err)
	}
	return string(out), nil
}

func mockScripts(title, bodyFormat string, n int) []GeneratedScript {
	scripts := make([]GeneratedScript, n)
	for i := range scripts {
		scripts[i] = GeneratedScript{
			Title:  fmt.Sprintf("%s %d", title, i+1),
			Script: fmt.Sprintf(bodyFormat, i+1),
		}
	}
	return scripts
}

func mockEmailSequence() EmailSequenceResponse {
	return EmailSequenceResponse{Emails: []SequenceEmail{
		{
			Subject: "Quick question about your video content",
			Body:    "Hi {{firstName}},\n\nI noticed {{companyName}} creates content in our space, and I wanted to reach out about something that might interest you.\n\nWe've recently developed AI spokesperson videos that help businesses create engaging video content at scale, without expensive production crews or on-camera talent.\n\nWould you be open to a quick 10-minute call to see if this might work for your team?",
			SendDay: 1,
		},
		{
			Subject: "How we solved the video content problem",
			Body:    "Hi {{firstName}},\n\nFollowing up on my last email. The problem: creating quality video content is expensive and time-consuming. The solution: AI spokesperson videos let you create professional videos in minutes, keep brand messaging consistent, and scale production without scaling costs.\n\nInterested in seeing how this could work for {{companyName}}?",
			SendDay: 3,
		},
		{
			Subject: "Results our clients are seeing",
			Body:    "Hi {{firstName}},\n\nSome quick wins our clients are experiencing: one saw a 3x increase in video output while cutting production costs by 60 percent. Another doubled email engagement with personalized video messages.\n\nWould a brief demo make sense for you?",
			SendDay: 5,
		},
		{
			Subject: "Limited spots for onboarding this month",
			Body:    "Hi {{firstName}},\n\nQuick heads up: we're limiting new client onboarding to 5 businesses this month to ensure quality implementation, and we currently have 2 spots remaining.\n\nIf AI spokesperson videos are something you've been considering, now would be the time. Can we schedule a quick call this week?",
			SendDay: 7,
		},
		{
			Subject: "Last chance - should I close your file?",
			Body:    "Hi {{firstName}},\n\nI haven't heard back, so I'm assuming AI spokesperson videos aren't a priority for {{companyName}} right now. Before I close your file: are you still interested, or should I check back in a few months?\n\nEither way, I appreciate your time.",
			SendDay: 10,
		},
	}}
}

func mockAds() AdResponse {
	return AdResponse{Ads: []AdVariation{
		{
			Type:         "Awareness",
			Headline:     "Meet Your AI Video Spokesperson",
			PrimaryText:  "Stop spending hours on video content. Let your AI spokesperson create engaging videos for you 24/7.",
			Description:  "AI-Powered Video Made Simple",
			CallToAction: "Learn More",
		},
		{
			Type:         "Engagement",
			Headline:     "Your Brand, Always On Camera",
			PrimaryText:  "What if you could be everywhere at once? Scale your video presence without the camera fatigue.",
			Description:  "See How It Works",
			CallToAction: "Watch Demo",
		},
		{
			Type:         "Lead Gen",
			Headline:     "Get Your Free AI Video Demo",
			PrimaryText:  "See your business brought to life with AI video. Get a personalized demo and discover how easy video marketing can be.",
			Description:  "Limited Free Demos Available",
			CallToAction: "Sign Up",
		},
		{
			Type:         "Retargeting",
			Headline:     "Ready to Transform Your Content?",
			PrimaryText:  "You checked us out, now take the next step. Join businesses using AI spokespersons to engage customers daily.",
			Description:  "Special offer for returning visitors",
			CallToAction: "Get Started",
		},
	}}
}
