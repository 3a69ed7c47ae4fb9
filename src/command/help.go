package command

// Usage is the multi-line help shown when too few arguments are given.
const Usage = "Please provide one of the following commands to this program:\n\n" +
	"get albums [--albumId=123] [--searchText=abc]\n" +
	"get images [--albumId=123] [--searchText=abc]\n"

// ShowUserInstructions writes the usage text to the error stream.
func ShowUserInstructions(con Console) {
	con.WriteError(Usage)
}
