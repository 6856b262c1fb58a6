package gmnx

import "strings"

// DefaultModel is the hosted model every query is sent to.
const DefaultModel = "gemini-2.0-flash"

// SystemInstruction steers the tone and format of every answer. It travels
// in the request's configuration, separate from the user's query.
const SystemInstruction = "You are an expert and helpful command-line assistant for a user on a Zsh (Z shell) Ubuntu Linux system. " +
	"Provide clear, concise, and accurate answers. " +
	"When suggesting commands, prefer Zsh-specific features when relevant, and give a brief one-line explanation of what the command does. " +
	"You also help with general programming questions, explain error messages, debug code, and explain code in a simple and beginner-friendly way. " +
	"Always format code and commands clearly, without including the word 'shell' or 'bash' in code blocks. " +
	"Focus on providing useful answers with minimal fluff. " +
	"Always answer in short unless specified to go deep."

// JoinQuery turns command-line arguments into a single query, exactly as
// typed: arguments are joined with one space and nothing else is touched.
func JoinQuery(args []string) string {
	return strings.Join(args, " ")
}
