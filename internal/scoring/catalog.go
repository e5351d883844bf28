package scoring

// Trait names shared by the built-in scales.
const (
	TraitMachiavellianism = "Machiavellianism"
	TraitNarcissism       = "Narcissism"
	TraitPsychopathy      = "Psychopathy"
	TraitSadism           = "Sadism"
)

// Catalog holds the built-in assessment definitions, keyed by id, plus the
// order they are presented in. Definitions are reference data: loaded once,
// never mutated, safe for concurrent reads.
type Catalog struct {
	order []string
	defs  map[string]*Definition
}

// NewCatalog builds the default catalog of dark-trait scales.
func NewCatalog() *Catalog {
	c := &Catalog{defs: make(map[string]*Definition)}
	for _, d := range []*Definition{sd3(), dirtyDozen(), sd4(), machIV()} {
		for i := range d.Items {
			d.Items[i].Order = i + 1
		}
		c.order = append(c.order, d.ID)
		c.defs[d.ID] = d
	}
	return c
}

// Get returns the definition for id, or nil if unknown.
func (c *Catalog) Get(id string) *Definition {
	return c.defs[id]
}

// All returns the definitions in presentation order.
func (c *Catalog) All() []*Definition {
	out := make([]*Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

func sd3() *Definition {
	return &Definition{
		ID:       "sdt3",
		Name:     "Short Dark Triad (SD3)",
		ScaleMax: 5,
		Items: []Item{
			{Text: "It's not wise to tell your secrets.", Trait: TraitMachiavellianism},
			{Text: "I like to use clever manipulation to get my way.", Trait: TraitMachiavellianism},
			{Text: "Whatever it takes, you must get the important people on your side.", Trait: TraitMachiavellianism},
			{Text: "Avoid direct conflict with others because they may be useful in the future.", Trait: TraitMachiavellianism},
			{Text: "It's wise to keep track of information that you can use against people later.", Trait: TraitMachiavellianism},
			{Text: "You should wait for the right time to get back at people.", Trait: TraitMachiavellianism},
			{Text: "There are things you should hide from other people because they don't need to know.", Trait: TraitMachiavellianism},
			{Text: "Make sure your plans benefit you, not others.", Trait: TraitMachiavellianism},
			{Text: "Most people can be manipulated.", Trait: TraitMachiavellianism},
			{Text: "People see me as a natural leader.", Trait: TraitNarcissism},
			{Text: "I hate being the center of attention.", Trait: TraitNarcissism, Reversed: true},
			{Text: "Many group activities tend to be dull without me.", Trait: TraitNarcissism},
			{Text: "I know that I am special because everyone keeps telling me so.", Trait: TraitNarcissism},
			{Text: "I like to get acquainted with important people.", Trait: TraitNarcissism},
			{Text: "I feel embarrassed if someone compliments me.", Trait: TraitNarcissism, Reversed: true},
			{Text: "I have been compared to famous people.", Trait: TraitNarcissism},
			{Text: "I am an average person.", Trait: TraitNarcissism, Reversed: true},
			{Text: "I insist on getting the respect I deserve.", Trait: TraitNarcissism},
			{Text: "I like to get revenge on authorities.", Trait: TraitPsychopathy},
			{Text: "I avoid dangerous situations.", Trait: TraitPsychopathy, Reversed: true},
			{Text: "Payback needs to be quick and nasty.", Trait: TraitPsychopathy},
			{Text: "People often say I'm out of control.", Trait: TraitPsychopathy},
			{Text: "It's true that I can be mean to others.", Trait: TraitPsychopathy},
			{Text: "People who mess with me always regret it.", Trait: TraitPsychopathy},
			{Text: "I have never gotten into trouble with the law.", Trait: TraitPsychopathy, Reversed: true},
			{Text: "I enjoy having sex with people I hardly know.", Trait: TraitPsychopathy},
			{Text: "I'll say anything to get what I want.", Trait: TraitPsychopathy},
		},
	}
}

func dirtyDozen() *Definition {
	return &Definition{
		ID:       "dirty_dozen",
		Name:     "Dark Triad Dirty Dozen",
		ScaleMax: 5,
		Items: []Item{
			{Text: "I tend to manipulate others to get my way.", Trait: TraitMachiavellianism},
			{Text: "I have used deceit or lied to get my way.", Trait: TraitMachiavellianism},
			{Text: "I have used flattery to get my way.", Trait: TraitMachiavellianism},
			{Text: "I tend to exploit others towards my own end.", Trait: TraitMachiavellianism},
			{Text: "I tend to lack remorse.", Trait: TraitPsychopathy},
			{Text: "I tend to be unconcerned with the morality of my actions.", Trait: TraitPsychopathy},
			{Text: "I tend to be callous or insensitive.", Trait: TraitPsychopathy},
			{Text: "I tend to be cynical.", Trait: TraitPsychopathy},
			{Text: "I tend to want others to admire me.", Trait: TraitNarcissism},
			{Text: "I tend to want others to pay attention to me.", Trait: TraitNarcissism},
			{Text: "I tend to seek prestige or status.", Trait: TraitNarcissism},
			{Text: "I tend to expect special favors from others.", Trait: TraitNarcissism},
		},
	}
}

func sd4() *Definition {
	return &Definition{
		ID:       "sdt4",
		Name:     "Short Dark Tetrad (SD4)",
		ScaleMax: 5,
		Items: []Item{
			{Text: "It's not wise to tell your secrets.", Trait: TraitMachiavellianism},
			{Text: "I like to use clever manipulation to get my way.", Trait: TraitMachiavellianism},
			{Text: "Whatever it takes, you must get the important people on your side.", Trait: TraitMachiavellianism},
			{Text: "Avoid direct conflict with others because they may be useful in the future.", Trait: TraitMachiavellianism},
			{Text: "It's wise to keep track of information that you can use against people later.", Trait: TraitMachiavellianism},
			{Text: "You should wait for the right time to get back at people.", Trait: TraitMachiavellianism},
			{Text: "There are things you should hide from other people because they don't need to know.", Trait: TraitMachiavellianism},
			{Text: "People see me as a natural leader.", Trait: TraitNarcissism},
			{Text: "I have a unique talent for persuading people.", Trait: TraitNarcissism},
			{Text: "Group activities tend to be dull without me.", Trait: TraitNarcissism},
			{Text: "I know that I am special because everyone keeps telling me so.", Trait: TraitNarcissism},
			{Text: "I have a great deal of natural talent.", Trait: TraitNarcissism},
			{Text: "I like to show off every now and then.", Trait: TraitNarcissism},
			{Text: "I'm likely to become a future star in some area.", Trait: TraitNarcissism},
			{Text: "People who mess with me always regret it.", Trait: TraitPsychopathy},
			{Text: "You should take advantage of other people before they do it to you.", Trait: TraitPsychopathy},
			{Text: "People often say I'm out of control.", Trait: TraitPsychopathy},
			{Text: "I sometimes get into trouble for breaking rules.", Trait: TraitPsychopathy},
			{Text: "I tend to fight against authorities and their rules.", Trait: TraitPsychopathy},
			{Text: "I've been in more fights than most people of my age and gender.", Trait: TraitPsychopathy},
			{Text: "I tend to dive in, then ask questions later.", Trait: TraitPsychopathy},
			{Text: "I love to watch YouTube clips of people fighting.", Trait: TraitSadism},
			{Text: "I enjoy watching violent sports.", Trait: TraitSadism},
			{Text: "Some people deserve to suffer.", Trait: TraitSadism},
			{Text: "Just for kicks, I've said mean things on social media.", Trait: TraitSadism},
			{Text: "I know how to hurt someone with words alone.", Trait: TraitSadism},
			{Text: "I enjoy making jokes at the expense of others.", Trait: TraitSadism},
			{Text: "I have fantasies about hurting people who have wronged me.", Trait: TraitSadism},
		},
	}
}

func machIV() *Definition {
	return &Definition{
		ID:       "mach_iv",
		Name:     "MACH-IV",
		ScaleMax: 7,
		Items: []Item{
			{Text: "Never tell anyone the real reason you did something unless it is useful to do so.", Trait: TraitMachiavellianism},
			{Text: "The best way to handle people is to tell them what they want to hear.", Trait: TraitMachiavellianism},
			{Text: "One should take action only when sure it is morally right.", Trait: TraitMachiavellianism, Reversed: true},
			{Text: "Most people are basically good and kind.", Trait: TraitMachiavellianism, Reversed: true},
			{Text: "It is safest to assume that all people have a vicious streak and it will come out when they are given a chance.", Trait: TraitMachiavellianism},
			{Text: "Honesty is the best policy in all cases.", Trait: TraitMachiavellianism, Reversed: true},
			{Text: "There is no excuse for lying to someone else.", Trait: TraitMachiavellianism, Reversed: true},
			{Text: "Generally speaking, people won't work hard unless they're forced to do so.", Trait: TraitMachiavellianism},
			{Text: "All in all, it is better to be humble and honest than to be important and dishonest.", Trait: TraitMachiavellianism, Reversed: true},
			{Text: "When you ask someone to do something for you, it is best to give the real reasons for wanting it rather than giving reasons which carry more weight.", Trait: TraitMachiavellianism, Reversed: true},
			{Text: "Most people who get ahead in the world lead clean, moral lives.", Trait: TraitMachiavellianism, Reversed: true},
			{Text: "Anyone who completely trusts anyone else is asking for trouble.", Trait: TraitMachiavellianism},
			{Text: "The biggest difference between most criminals and other people is that the criminals are stupid enough to get caught.", Trait: TraitMachiavellianism},
			{Text: "Most people are brave.", Trait: TraitMachiavellianism, Reversed: true},
			{Text: "It is wise to flatter important people.", Trait: TraitMachiavellianism},
			{Text: "It is possible to be good in all respects.", Trait: TraitMachiavellianism, Reversed: true},
			{Text: "P.T. Barnum was wrong when he said that there's a sucker born every minute.", Trait: TraitMachiavellianism, Reversed: true},
			{Text: "It is hard to get ahead without cutting corners here and there.", Trait: TraitMachiavellianism},
			{Text: "People suffering from incurable diseases should have the choice of being put painlessly to death.", Trait: TraitMachiavellianism},
			{Text: "Most people forget more easily the death of their parents than the loss of their property.", Trait: TraitMachiavellianism},
		},
	}
}
