package menu

import "fmt"

const usageTextTemplate = `%[2]s%[3]s# %[1]s%[4]s
Command line web application for mensa food

%[2]s%[3]s# Usage%[4]s
Mensa Am Adenauerring (default):

    %[5]s$ curl %[1]s%[4]s

Mensa Schloss Gottesaue:

    %[5]s$ curl %[1]s/Gottesaue%[4]s
    %[5]s$ curl %[1]s/G%[4]s

Linie 3 am Adenauerring:

    %[5]s$ curl %[1]s/A/3%[4]s

JSON output:

    %[5]s$ curl %[1]s?format=json%[4]s

`

const usageHTMLTemplate = `<pre>
    <h1># %[1]s</h1>
    Command line web application for mensa food
    <h1># Usage</h1>
    Mensa Am Adenauerring (default):
    <code>
        $ curl %[1]s
    </code>
    Mensa Schloss Gottesaue:
    <code>
        $ curl %[1]s/Gottesaue
        $ curl %[1]s/G
    </code>
    Linie 3 am Adenauerring:
    <code>
        $ curl %[1]s/A/3
    </code>
    JSON output:
    <code>
        $ curl %[1]s?format=json
    </code>
</pre>`

// UsageText renders the ANSI usage page shown to curl clients.
func UsageText(host string) string {
	return fmt.Sprintf(usageTextTemplate, host, ansiBold, ansiYellow, ansiReset, ansiMagenta)
}

// UsageHTML renders the usage page variant served to browsers.
func UsageHTML(host string) string {
	return fmt.Sprintf(usageHTMLTemplate, host)
}
