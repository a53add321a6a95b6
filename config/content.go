package config

import (
	"fmt"
	"strings"
)

// TabID identifies a page section shown in the main panel
type TabID int

const (
	TabHome TabID = iota
	TabOverview
	TabBrain
	TabComponents
	TabRoadmap
	TabFAQ
	TabCount // Must be last - used for array sizing
)

var tabNames = [TabCount]string{
	TabHome:       "home",
	TabOverview:   "overview",
	TabBrain:      "brain",
	TabComponents: "components",
	TabRoadmap:    "roadmap",
	TabFAQ:        "faq",
}

// String returns the flag name of the tab
func (t TabID) String() string {
	if t < 0 || t >= TabCount {
		return fmt.Sprintf("tab(%d)", int(t))
	}
	return tabNames[t]
}

// ParseTab resolves a tab flag value (case-insensitive)
func ParseTab(name string) (TabID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range tabNames {
		if n == name {
			return TabID(i), nil
		}
	}
	return TabHome, fmt.Errorf("unknown tab %q", name)
}

// Link is a labelled external URL
type Link struct {
	Label string
	URL   string
}

// Feature is a titled paragraph shown on a card
type Feature struct {
	Title       string
	Description string
}

// Phase is one roadmap milestone
type Phase struct {
	Title  string
	Status string // Empty when not started
	Items  []string
}

// FAQItem is one question of the accordion
type FAQItem struct {
	Question string
	Answer   string
}

// ContentConfig holds all the page copy
type ContentConfig struct {
	Tabs [TabCount]string

	HeroTitle string
	HeroLead  string
	HeroLinks []Link

	TokenTitle        string
	TokenTagline      string
	TokenAddressLabel string
	ContractAddress   string
	CopyLabel         string
	CopiedLabel       string

	OverviewTitle        string
	OverviewParagraphs   []string
	ArchitectureTitle    string
	ArchitectureBullets  []string
	BrainLeftFeatures    []Feature
	BrainRightFeatures   []Feature
	ComponentsTitle      string
	Components           []Feature
	RoadmapTitle         string
	Phases               []Phase
	RoadmapMore          Link
	FAQTitle             string
	FAQ                  []FAQItem
	FooterBrand          string
	FooterIconLinks      []Link
	FooterTextLinks      []Link
	FooterCopyright      string
	SiteURL              string
}

var Content ContentConfig

func init() {
	Content = ContentConfig{
		Tabs: [TabCount]string{
			TabHome:       "Home",
			TabOverview:   "Overview",
			TabBrain:      "Matrix Brain",
			TabComponents: "Key Components",
			TabRoadmap:    "Roadmap",
			TabFAQ:        "FAQ",
		},

		HeroTitle: "Building the first\ndigital tardigrade life form.",
		HeroLead: "Bringing tardigrade to life in the digital realm with on-chain transactions, " +
			"exploring the boundaries of biology, simulation, and AI innovation.",
		HeroLinks: []Link{
			{Label: "Launch app", URL: "https://app.tardionchain.xyz/"},
			{Label: "Buy $tardi", URL: "https://jup.ag/swap/SOL-tardi"},
		},

		TokenTitle:        "$TARDI Token",
		TokenTagline:      "The native token powering the Tardionchain ecosystem",
		TokenAddressLabel: "Contract Address (SOL)",
		ContractAddress:   "DTTLrCGbqn6fmNuKjGYqWFeQU5Hz153f5C3pNnxepump",
		CopyLabel:         "Copy",
		CopiedLabel:       "Copied",

		OverviewTitle: "Overview",
		OverviewParagraphs: []string{
			"Tardi is an experimental project designed to simulate a living organism through a neural " +
				"network-based system. It dynamically processes real-time data, like on-chain transactions, " +
				"to update neuron weights, mimicking how a biological brain learns and adapts.",
			"The simulation integrates real-time data processing, visual feedback, and interactive elements " +
				"to create an engaging experience that reflects the complexities of neural activity.",
		},
		ArchitectureTitle: "Neural Network Architecture",
		ArchitectureBullets: []string{
			"Movement Neurons: Control navigation and trajectory",
			"Sensory Neurons: Gather environmental information",
			"Interneurons: Facilitate communication between neurons",
		},

		BrainLeftFeatures: []Feature{
			{
				Title: "Neural Network Simulation",
				Description: "Advanced biological simulation featuring specialized neurons: movement, sensory, " +
					"motor, and interneurons working in harmony.",
			},
			{
				Title: "Real-Time Adaptation",
				Description: "Dynamic weight adjustments based on blockchain transactions and environmental " +
					"stimuli, enabling continuous learning and evolution.",
			},
			{
				Title: "Biological Mimicry",
				Description: "Inspired by tardigrades' resilience, simulating their unique survival abilities " +
					"and adaptability to extreme conditions.",
			},
		},
		BrainRightFeatures: []Feature{
			{
				Title: "Research Applications",
				Description: "Enabling studies in extreme environments, space exploration, and synthetic " +
					"biology through advanced simulation.",
			},
			{
				Title: "Interactive Learning",
				Description: "Real-time visualization of neural interactions, allowing users to observe and " +
					"understand complex biological processes.",
			},
			{
				Title: "Decentralized Evolution",
				Description: "Community-driven development where each interaction shapes the organism's " +
					"neural pathways and behavior.",
			},
		},

		ComponentsTitle: "Key Components",
		Components: []Feature{
			{
				Title: "Neural Network Simulation",
				Description: "Models neural activity focusing on movement command neurons, motor neurons, " +
					"muscle neurons, sensory neurons, and interneurons for real-time behavior simulation.",
			},
			{
				Title: "Dynamic Weight Adjustments",
				Description: "Neural connections evolve over time using real-time data from the blockchain, " +
					"processing and applying updated weights to simulate adaptive behavior.",
			},
			{
				Title: "Interactive Visualization",
				Description: "Real-time visualization of neural network activity through a canvas-based " +
					"frontend, allowing users to observe and interact with the system.",
			},
		},

		RoadmapTitle: "Development Roadmap",
		Phases: []Phase{
			{
				Title:  "Phase 1: Neural Base and Data Collection",
				Status: "Currently in progress",
				Items: []string{
					"Create rudimentary neural simulation",
					"Collaborate with researchers for data collection",
					"Develop basic neural network for behavior imitation",
				},
			},
			{
				Title: "Phase 2: Research and Foundation",
				Items: []string{
					"Extensive literature review on tardigrade biology",
					"Define biological parameters and neural architecture",
					"Set up foundational simulation framework",
				},
			},
			{
				Title: "Phase 3: Neural Network Development",
				Items: []string{
					"Model detailed nervous system",
					"Implement behavioral simulation",
					"Conduct initial testing and validation",
				},
			},
		},
		RoadmapMore: Link{Label: "Learn More...", URL: "https://docs.tardionchain.xyz/1.overview/roadmap"},

		FAQTitle: "Frequently Asked Questions",
		FAQ: []FAQItem{
			{
				Question: "How does the neural simulation work?",
				Answer: "The simulation uses different types of neurons including movement command neurons, " +
					"motor neurons, sensory neurons, and interneurons. These work together to create realistic " +
					"behavior patterns, with neural connections evolving over time using real-time data from " +
					"the on-chain txs.",
			},
			{
				Question: "What are the key features of the project?",
				Answer: "The project features a detailed neural network simulation, dynamic weight adjustments " +
					"based on on-chain data, and interactive visualization allowing users to observe and " +
					"interact with the system in real-time.",
			},
			{
				Question: "What is the current development phase?",
				Answer: "We are currently in Phase 1, focusing on creating a rudimentary neural simulation, " +
					"collaborating with researchers for data collection, and developing basic neural networks " +
					"for behavior imitation.",
			},
		},

		FooterBrand: "Tardionchain",
		FooterIconLinks: []Link{
			{Label: "Twitter", URL: "https://twitter.com/tardionchainxyz"},
			{Label: "Telegram", URL: "https://t.me/tardionchain"},
			{Label: "YouTube", URL: "https://youtube.com/@tardionchain"},
			{Label: "CoinGecko", URL: "https://www.coingecko.com/en/coins/tardigrade"},
			{Label: "Solscan", URL: "https://solscan.io/token/DTTLrCGbqn6fmNuKjGYqWFeQU5Hz153f5C3pNnxepump"},
			{Label: "Jupiter", URL: "https://jup.ag/swap/SOL-tardi"},
			{Label: "GitHub", URL: "https://github.com/tardionchain"},
		},
		// Site-relative links resolve against SiteURL
		FooterTextLinks: []Link{
			{Label: "Careers", URL: "/careers"},
			{Label: "Research", URL: "/research"},
			{Label: "Docs", URL: "https://docs.tardionchain.xyz"},
			{Label: "GitHub Repo", URL: "https://github.com/tardionchain/prototype"},
		},
		FooterCopyright: "© 2024 Tardionchain. All rights reserved.",
		SiteURL:         "https://tardionchain.xyz",
	}
}
