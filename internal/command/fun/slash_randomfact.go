package fun

import (
	"math/rand"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

var facts = []string{
	"A group of flamingos is called a 'flamboyance'.",
	"The shortest war in history was between Britain and Zanzibar on August 27, 1896. Zanzibar surrendered after 38 minutes.",
	"Honey never spoils. Archaeologists have found pots of honey in ancient Egyptian tombs that are over 3,000 years old and still edible.",
	"Cows don't have upper front teeth.",
	"The average person walks the equivalent of five times around the world in their lifetime.",
	"The total weight of all the ants on Earth is estimated to be about the same as the total weight of all the humans on Earth.",
	"The electric eel is not an eel; it's a type of knifefish.",
}

func init() {
	command.Register(&randomfactCommand{})
}

type randomfactCommand struct{}

func (c *randomfactCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "randomfact",
		Description: "Gets a random fun fact.",
		Category:    "fun",
		Class:       command.BotAccess,
	}
}

func (c *randomfactCommand) Run(sc *command.SlashContext) error {
	return bot.Respond(sc.Session, sc.Event, "💡 **Random Fact:** "+facts[rand.Intn(len(facts))])
}
