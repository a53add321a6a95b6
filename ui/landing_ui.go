package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/tardionchain/tardi/fonts"
	"github.com/tardionchain/tardi/systems"
	"github.com/yohamta/donburi/ecs"
)

// LandingUI holds the ebitenui interface of the landing page: navigation bar, the
// active section and the footer
type LandingUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	tab     cfg.TabID
	nav     *widget.Container
	content *widget.Container

	// Overview token card
	copyButton  *widget.Button
	copiedColor *widget.LabelColor
	copied      bool

	// FAQ accordion
	faqSlots    []*widget.Container
	faqAnswers  []*widget.Label
	answerColor *widget.LabelColor
	faqOpen     int

	// Feature card label colours, fading in with the reveal
	cardColors [][]*widget.LabelColor

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace   text.Face
	headingFace text.Face
	bodyFace    text.Face
	boldFace    text.Face
	smallFace   text.Face
	monoFace    text.Face
}

// NewLandingUI builds the page. fonts.LoadAll must have run.
func NewLandingUI(e *ecs.ECS) *LandingUI {
	lui := &LandingUI{
		ecs:     e,
		tab:     -1,
		faqOpen: -1,
	}

	lui.loadFonts()
	lui.buildUI()

	return lui
}

func (lui *LandingUI) loadFonts() {
	lui.titleFace = fonts.Bold(cfg.UI.TitleFontSize)
	lui.headingFace = fonts.Bold(cfg.UI.HeadingFontSize)
	lui.bodyFace = fonts.Regular(cfg.UI.BodyFontSize)
	lui.boldFace = fonts.Bold(cfg.UI.BodyFontSize)
	lui.smallFace = fonts.Regular(cfg.UI.SmallFontSize)
	lui.monoFace = fonts.Glyph(cfg.UI.SmallFontSize)
}

func (lui *LandingUI) buildUI() {
	// Transparent root so the brain canvas drawn underneath stays visible
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	lui.nav = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Theme.NavBar)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: cfg.UI.Padding, Right: cfg.UI.Padding}),
			widget.RowLayoutOpts.Spacing(cfg.UI.Spacing/2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, cfg.UI.NavHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)
	rootContainer.AddChild(lui.nav)

	lui.content = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	rootContainer.AddChild(lui.content)

	rootContainer.AddChild(lui.buildFooter())

	lui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update follows the active section and the page state, then lets ebitenui handle input
func (lui *LandingUI) Update() {
	if systems.ConsumeNavChange(lui.ecs) || lui.tab != systems.ActiveTab(lui.ecs) {
		lui.showTab(systems.ActiveTab(lui.ecs))
	}

	switch lui.tab {
	case cfg.TabOverview:
		lui.updateCopy()
	case cfg.TabBrain:
		lui.updateCards()
	case cfg.TabFAQ:
		lui.updateFAQ()
	}

	lui.UI.Update()
}

// Draw renders the interface
func (lui *LandingUI) Draw(screen *ebiten.Image) {
	lui.UI.Draw(screen)
}

func (lui *LandingUI) showTab(tab cfg.TabID) {
	lui.tab = tab
	lui.rebuildNav()

	lui.copyButton = nil
	lui.copiedColor = nil
	lui.faqSlots = nil
	lui.faqAnswers = nil
	lui.cardColors = nil
	lui.faqOpen = -1

	var panel *widget.Container
	switch tab {
	case cfg.TabOverview:
		panel = lui.buildOverview()
	case cfg.TabBrain:
		panel = lui.buildBrain()
	case cfg.TabComponents:
		panel = lui.buildComponents()
	case cfg.TabRoadmap:
		panel = lui.buildRoadmap()
	case cfg.TabFAQ:
		panel = lui.buildFAQ()
	default:
		panel = lui.buildHome()
	}

	holder := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	holder.AddChild(panel)

	lui.content.RemoveChildren()
	lui.content.AddChild(holder)
}

func (lui *LandingUI) rebuildNav() {
	lui.nav.RemoveChildren()

	lui.nav.AddChild(lui.label(cfg.Content.FooterBrand, &lui.boldFace, cfg.Theme.Title))
	lui.nav.AddChild(spacer(cfg.UI.Spacing*2, 1))

	for tab := cfg.TabID(0); tab < cfg.TabCount; tab++ {
		t := tab // Capture for closure
		img := lui.buttonImage()
		if t == lui.tab {
			img = lui.activeTabImage()
		}
		lui.nav.AddChild(lui.button(cfg.Content.Tabs[t], &lui.smallFace, img, func() {
			systems.RequestTab(lui.ecs, t)
		}))
	}
}

func (lui *LandingUI) buildHome() *widget.Container {
	panel := column(cfg.UI.Spacing * 2)

	panel.AddChild(lui.label(cfg.Content.HeroTitle, &lui.titleFace, cfg.Theme.Title))
	panel.AddChild(lui.paragraph(cfg.Content.HeroLead, cfg.UI.ParagraphWidth, cfg.Theme.MutedText))

	links := row(cfg.UI.Spacing)
	for _, l := range cfg.Content.HeroLinks {
		links.AddChild(lui.linkButton(l, &lui.boldFace))
	}
	panel.AddChild(links)

	return panel
}

func (lui *LandingUI) buildOverview() *widget.Container {
	panel := row(cfg.UI.Spacing * 3)

	body := column(cfg.UI.Spacing)
	body.AddChild(lui.label(cfg.Content.OverviewTitle, &lui.headingFace, cfg.Theme.Title))
	for _, p := range cfg.Content.OverviewParagraphs {
		body.AddChild(lui.paragraph(p, cfg.UI.ParagraphWidth, cfg.Theme.Text))
	}
	body.AddChild(lui.label(cfg.Content.ArchitectureTitle, &lui.boldFace, cfg.Theme.Title))
	for _, b := range cfg.Content.ArchitectureBullets {
		body.AddChild(lui.paragraph("- "+b, cfg.UI.ParagraphWidth, cfg.Theme.MutedText))
	}
	panel.AddChild(body)

	panel.AddChild(lui.buildTokenCard())
	return panel
}

func (lui *LandingUI) buildTokenCard() *widget.Container {
	card := lui.card()

	card.AddChild(lui.label(cfg.Content.TokenTitle, &lui.headingFace, cfg.Theme.Title))
	card.AddChild(lui.paragraph(cfg.Content.TokenTagline, cfg.UI.CardWidth, cfg.Theme.MutedText))
	card.AddChild(lui.label(cfg.Content.TokenAddressLabel, &lui.smallFace, cfg.Theme.MutedText))
	card.AddChild(lui.label(cfg.Content.ContractAddress, &lui.monoFace, cfg.Theme.Accent))

	actions := row(cfg.UI.Spacing)
	lui.copyButton = lui.button(cfg.Content.CopyLabel, &lui.boldFace, lui.buttonImage(), func() {
		systems.RequestCopy(lui.ecs)
	})
	actions.AddChild(lui.copyButton)

	lui.copiedColor = &widget.LabelColor{Idle: withOpacity(cfg.Theme.Success, 0)}
	actions.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Content.CopiedLabel, &lui.smallFace, lui.copiedColor),
	))
	card.AddChild(actions)

	lui.copied = false
	lui.updateCopy()
	return card
}

func (lui *LandingUI) updateCopy() {
	if lui.copyButton == nil {
		return
	}
	c := systems.GetOrCreateCopy(lui.ecs)

	if c.Copied != lui.copied {
		lui.copied = c.Copied
		if textWidget := lui.copyButton.Text(); textWidget != nil {
			textWidget.Label = cfg.Content.CopyLabel
			if c.Copied {
				textWidget.Label = cfg.Content.CopiedLabel
			}
		}
	}
	lui.copiedColor.Idle = withOpacity(cfg.Theme.Success, c.Opacity)
}

func (lui *LandingUI) buildBrain() *widget.Container {
	panel := row(0)

	left := column(cfg.UI.Spacing * 2)
	for _, f := range cfg.Content.BrainLeftFeatures {
		left.AddChild(lui.featureCard(f, true))
	}
	panel.AddChild(left)

	// The brain animation shows through the gap
	panel.AddChild(spacer(cfg.UI.BrainGap, 1))

	right := column(cfg.UI.Spacing * 2)
	for _, f := range cfg.Content.BrainRightFeatures {
		right.AddChild(lui.featureCard(f, true))
	}
	panel.AddChild(right)

	lui.updateCards()
	return panel
}

func (lui *LandingUI) updateCards() {
	for i, colors := range lui.cardColors {
		a := systems.CardOpacity(lui.ecs, i)
		colors[0].Idle = withOpacity(cfg.Theme.Title, a)
		colors[1].Idle = withOpacity(cfg.Theme.MutedText, a)
	}
}

func (lui *LandingUI) buildComponents() *widget.Container {
	panel := column(cfg.UI.Spacing * 2)
	panel.AddChild(lui.label(cfg.Content.ComponentsTitle, &lui.headingFace, cfg.Theme.Title))

	cards := row(cfg.UI.Spacing * 2)
	for _, f := range cfg.Content.Components {
		cards.AddChild(lui.featureCard(f, false))
	}
	panel.AddChild(cards)
	return panel
}

func (lui *LandingUI) buildRoadmap() *widget.Container {
	panel := column(cfg.UI.Spacing * 2)
	panel.AddChild(lui.label(cfg.Content.RoadmapTitle, &lui.headingFace, cfg.Theme.Title))

	phases := row(cfg.UI.Spacing * 2)
	for _, p := range cfg.Content.Phases {
		card := lui.card()
		titleColor := cfg.Theme.PhasePending
		if p.Status != "" {
			titleColor = cfg.Theme.PhaseActive
		}
		card.AddChild(lui.paragraph(p.Title, cfg.UI.CardWidth, titleColor))
		if p.Status != "" {
			card.AddChild(lui.label(p.Status, &lui.smallFace, cfg.Theme.Accent))
		}
		for _, item := range p.Items {
			card.AddChild(lui.paragraph("- "+item, cfg.UI.CardWidth, cfg.Theme.MutedText))
		}
		phases.AddChild(card)
	}
	panel.AddChild(phases)

	panel.AddChild(lui.linkButton(cfg.Content.RoadmapMore, &lui.smallFace))
	return panel
}

func (lui *LandingUI) buildFAQ() *widget.Container {
	panel := column(cfg.UI.Spacing)
	panel.AddChild(lui.label(cfg.Content.FAQTitle, &lui.headingFace, cfg.Theme.Title))

	lui.answerColor = &widget.LabelColor{Idle: withOpacity(cfg.Theme.MutedText, 0)}
	lui.faqSlots = make([]*widget.Container, len(cfg.Content.FAQ))
	lui.faqAnswers = make([]*widget.Label, len(cfg.Content.FAQ))

	for i, item := range cfg.Content.FAQ {
		idx := i // Capture for closure
		entry := lui.card()
		entry.AddChild(lui.button(item.Question, &lui.boldFace, lui.buttonImage(), func() {
			systems.ToggleFAQ(lui.ecs, idx)
			lui.updateFAQ()
		}))

		lui.faqAnswers[i] = widget.NewLabel(
			widget.LabelOpts.Text(wrapText(item.Answer, lui.bodyFace, cfg.UI.ParagraphWidth), &lui.bodyFace, lui.answerColor),
		)
		lui.faqSlots[i] = column(0)
		entry.AddChild(lui.faqSlots[i])
		panel.AddChild(entry)
	}

	lui.updateFAQ()
	return panel
}

func (lui *LandingUI) updateFAQ() {
	if lui.faqSlots == nil {
		return
	}
	faq := systems.GetOrCreateFAQ(lui.ecs)

	if faq.Open != lui.faqOpen {
		if lui.faqOpen >= 0 && lui.faqOpen < len(lui.faqSlots) {
			lui.faqSlots[lui.faqOpen].RemoveChildren()
		}
		if faq.Open >= 0 && faq.Open < len(lui.faqSlots) {
			lui.faqSlots[faq.Open].AddChild(lui.faqAnswers[faq.Open])
		}
		lui.faqOpen = faq.Open
	}
	lui.answerColor.Idle = withOpacity(cfg.Theme.MutedText, faq.Opacity)
}

func (lui *LandingUI) buildFooter() *widget.Container {
	footer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Theme.Footer)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.Spacing)),
			widget.RowLayoutOpts.Spacing(cfg.UI.Spacing/2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, cfg.UI.FooterHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	top := row(cfg.UI.Spacing)
	top.AddChild(lui.label(cfg.Content.FooterBrand, &lui.boldFace, cfg.Theme.Title))
	for _, l := range cfg.Content.FooterIconLinks {
		top.AddChild(lui.linkButton(l, &lui.smallFace))
	}
	footer.AddChild(top)

	bottom := row(cfg.UI.Spacing)
	for _, l := range cfg.Content.FooterTextLinks {
		bottom.AddChild(lui.linkButton(l, &lui.smallFace))
	}
	bottom.AddChild(lui.label(cfg.Content.FooterCopyright, &lui.smallFace, cfg.Theme.MutedText))
	footer.AddChild(bottom)

	return footer
}

// featureCard builds a titled card. Cards on the brain section register their label
// colours so the reveal can fade them in.
func (lui *LandingUI) featureCard(f cfg.Feature, reveal bool) *widget.Container {
	card := lui.card()

	titleColor := &widget.LabelColor{Idle: cfg.Theme.Title}
	bodyColor := &widget.LabelColor{Idle: cfg.Theme.MutedText}
	if reveal {
		titleColor.Idle = withOpacity(cfg.Theme.Title, 0)
		bodyColor.Idle = withOpacity(cfg.Theme.MutedText, 0)
		lui.cardColors = append(lui.cardColors, []*widget.LabelColor{titleColor, bodyColor})
	}

	card.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(wrapText(f.Title, lui.boldFace, cfg.UI.CardWidth), &lui.boldFace, titleColor),
	))
	card.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(wrapText(f.Description, lui.smallFace, cfg.UI.CardWidth), &lui.smallFace, bodyColor),
	))
	return card
}

func (lui *LandingUI) card() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Theme.Card)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.UI.Spacing/2),
		)),
	)
}

func (lui *LandingUI) label(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: clr}),
	)
}

func (lui *LandingUI) paragraph(s string, width float64, clr color.Color) *widget.Label {
	return lui.label(wrapText(s, lui.bodyFace, width), &lui.bodyFace, clr)
}

func (lui *LandingUI) button(s string, face *text.Face, img *widget.ButtonImage, onClick func()) *widget.Button {
	w, h := text.Measure(s, *face, 0)
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(int(w)+cfg.UI.Padding*2, int(h)+cfg.UI.Spacing)),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(s, face, &widget.ButtonTextColor{
			Idle:    cfg.Theme.Text,
			Hover:   cfg.Theme.Title,
			Pressed: cfg.Theme.MutedText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (lui *LandingUI) linkButton(l cfg.Link, face *text.Face) *widget.Button {
	url := l.URL // Capture for closure
	return lui.button(l.Label, face, lui.buttonImage(), func() {
		systems.OpenLink(url)
	})
}

func (lui *LandingUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.Theme.ButtonIdle)
	hover := image.NewNineSliceColor(cfg.Theme.ButtonHover)
	pressed := image.NewNineSliceColor(cfg.Theme.ButtonPressed)
	disabled := image.NewNineSliceColor(cfg.Theme.ButtonPressed)

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (lui *LandingUI) activeTabImage() *widget.ButtonImage {
	active := image.NewNineSliceColor(cfg.Theme.TabActive)
	return &widget.ButtonImage{
		Idle:     active,
		Hover:    active,
		Pressed:  image.NewNineSliceColor(cfg.Theme.ButtonPressed),
		Disabled: active,
	}
}

func column(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func row(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func spacer(w, h int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(w, h)),
	)
}
