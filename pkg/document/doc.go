/*
Package document parses declarative pipeline documents into a domain.Pipeline.

Three formats are supported. XML is the canonical one:

	<pipeline name="greet">
	  <action class="GetInputNode" outputId="x" name="A"/>
	  <action class="PrintInputNode" inputId="x" name="B"/>
	</pipeline>

YAML and JSON carry the same fields:

	name: greet
	actions:
	  - class: GetInputNode
	    outputId: x
	    name: A

Every action needs a class and a name; inputId and outputId default to empty strings.
*/
package document
