package mcp

import "fmt"

// DefaultWidgetBaseURL is where the widget bundle is served from when the
// host page does not inject its own base URL.
const DefaultWidgetBaseURL = "http://localhost:8080"

// WidgetHTML returns the HTML shell embedding the fridge widget. The shell
// carries no data; the host passes the fridge snapshot through the tool
// output, and the bundle, stylesheet and bridge script load from baseURL's
// /static tree so the same shell works from any deployment.
func WidgetHTML(baseURL string) string {
	if baseURL == "" {
		baseURL = DefaultWidgetBaseURL
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Fridge Widget</title>
    <script>
      (function() {
        var baseUrl = window.innerBaseUrl || %q;

        var link = document.createElement('link');
        link.rel = 'stylesheet';
        link.crossOrigin = 'anonymous';
        link.href = baseUrl + '/static/widget/assets/style.css';
        document.head.appendChild(link);

        var adapterScript = document.createElement('script');
        adapterScript.src = baseUrl + '/static/js/mcpui-bridge.js';
        adapterScript.async = false;
        document.head.appendChild(adapterScript);

        var widgetScript = document.createElement('script');
        widgetScript.type = 'module';
        widgetScript.crossOrigin = 'anonymous';
        widgetScript.src = baseUrl + '/static/widget/assets/index.js';
        document.head.appendChild(widgetScript);
      })();
    </script>
  </head>
  <body>
    <div id="root"></div>
  </body>
</html>`, baseURL)
}
