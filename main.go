// Command industry-flow runs the project management API and its terminal client.
package main

import "industry-flow/cmd"

func main() {
	cmd.Execute()
}
